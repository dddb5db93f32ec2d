package application_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshbit/internal/application"
	"freshbit/internal/domain"
	"freshbit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	application.Service
	gotTarget application.Status
	gotReq    application.BulkRequest
}

func (s *stubService) Bulk(_ context.Context, _ domain.Principal, _ uuid.UUID, target application.Status, req application.BulkRequest) (application.BulkResult, error) {
	s.gotTarget = target
	s.gotReq = req
	return application.BulkResult{Target: string(target), Applied: len(req.StudentIDs)}, nil
}

func newSelectionRouter(svc application.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.KeyPrincipal, domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()})
		c.Next()
	})
	h := application.NewHandler(svc)
	for action, target := range application.BulkTargets {
		r.POST("/api/selection/:id/"+action, h.Bulk(target))
	}
	return r
}

func TestHandler_BulkRoutesToTarget(t *testing.T) {
	svc := &stubService{}
	r := newSelectionRouter(svc)

	body := `{"student_ids":["` + uuid.NewString() + `"],"college_id":"` + uuid.NewString() + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/selection/"+uuid.NewString()+"/interview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, application.StatusInInterview, svc.gotTarget)

	var env struct {
		Data application.BulkResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "IN_INTERVIEW", env.Data.Target)
	assert.Equal(t, 1, env.Data.Applied)
}

func TestHandler_BulkValidation(t *testing.T) {
	r := newSelectionRouter(&stubService{})

	cases := map[string]string{
		"missing college": `{"student_ids":["` + uuid.NewString() + `"]}`,
		"empty students":  `{"student_ids":[],"college_id":"` + uuid.NewString() + `"}`,
		"bad student id":  `{"student_ids":["nope"],"college_id":"` + uuid.NewString() + `"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/selection/"+uuid.NewString()+"/final", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/selection/not-a-uuid/reject", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
