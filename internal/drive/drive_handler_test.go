package drive_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshbit/internal/domain"
	"freshbit/internal/drive"
	driveerrors "freshbit/internal/drive/errors"
	driveMock "freshbit/internal/drive/mock"
	"freshbit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func routerAs(p domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.KeyPrincipal, p)
		c.Next()
	})
	return r
}

func TestHandler_ActivateNextStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := driveMock.NewMockService(ctrl)
	h := drive.NewHandler(svc)
	driveID, collegeID := uuid.New(), uuid.New()

	t.Run("admin passes college_id from body", func(t *testing.T) {
		admin := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
		r := routerAs(admin)
		r.POST("/api/admin/drives/:id/activate-next-stage", h.ActivateNextStage)

		svc.EXPECT().ActivateNextStage(gomock.Any(), admin, driveID, gomock.Any()).DoAndReturn(
			func(_ any, _ domain.Principal, _ uuid.UUID, scope *uuid.UUID) (drive.StageAdvanceResponse, error) {
				require.NotNil(t, scope)
				assert.Equal(t, collegeID, *scope)
				return drive.StageAdvanceResponse{Completed: "APPLICATIONS", Activated: "TEST"}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/drives/"+driveID.String()+"/activate-next-stage",
			strings.NewReader(`{"college_id":"`+collegeID.String()+`"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("college scope is always the caller", func(t *testing.T) {
		college := domain.Principal{UserID: uuid.New(), Role: domain.RoleCollege, OrgID: collegeID}
		r := routerAs(college)
		r.POST("/api/college/drives/:id/activate-next-stage", h.ActivateNextCollegeStage)

		svc.EXPECT().ActivateNextStage(gomock.Any(), college, driveID, gomock.Any()).DoAndReturn(
			func(_ any, _ domain.Principal, _ uuid.UUID, scope *uuid.UUID) (drive.StageAdvanceResponse, error) {
				assert.Equal(t, collegeID, *scope)
				return drive.StageAdvanceResponse{}, driveerrors.ErrDriveNotPublished
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/college/drives/"+driveID.String()+"/activate-next-stage", nil))
		assert.Equal(t, http.StatusConflict, w.Code)

		var env struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestHandler_ListRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := drive.NewHandler(driveMock.NewMockService(ctrl))
	r := routerAs(domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()})
	r.GET("/api/drives/company", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/drives/company?status=ARCHIVED", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
