package analytics_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshbit/internal/analytics"
	analyticsMock "freshbit/internal/analytics/mock"
	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc analytics.Service, p domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.KeyPrincipal, p)
		c.Next()
	})
	h := analytics.NewHandler(svc)
	r.GET("/api/company/stats", h.CompanyStats)
	r.GET("/api/college/drives/:id", h.CollegeDrive)
	return r
}

func TestHandler_CompanyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analyticsMock.NewMockService(ctrl)
	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()}

	svc.EXPECT().CompanyStats(gomock.Any(), p).Return(analytics.CompanyStatsResponse{Selected: 4}, nil)

	w := httptest.NewRecorder()
	newRouter(svc, p).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/company/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Ok   bool                           `json:"ok"`
		Data analytics.CompanyStatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.EqualValues(t, 4, env.Data.Selected)
}

func TestHandler_CollegeDrive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analyticsMock.NewMockService(ctrl)
	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleCollege, OrgID: uuid.New()}
	r := newRouter(svc, p)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/college/drives/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	driveID := uuid.New()
	svc.EXPECT().CollegeDrive(gomock.Any(), p, driveID).Return(analytics.CollegeDriveResponse{}, apperror.ErrForbidden)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/college/drives/"+driveID.String(), nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
