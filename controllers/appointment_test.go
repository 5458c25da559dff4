package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestGetAppointments_RejectsMalformedFromDate(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/api/appointments?from=2024-13-99")
	c.Set("businessId", uuid.NewString())

	GetAppointments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "from")
}

func TestGetAppointments_RejectsMalformedToDate(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/api/appointments?to=next-tuesday")
	c.Set("businessId", uuid.NewString())

	GetAppointments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "to")
}

func TestCreateAppointment_RejectsMalformedUserClaim(t *testing.T) {
	c, w := newTestContext(t, http.MethodPost, "/api/appointments")
	c.Set("businessId", uuid.NewString())
	c.Set("userId", "not-a-uuid")

	CreateAppointment(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "user ID")
}
