package notification

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"futsalcourt/internal/mailer"
)

func setupRouter(rec *mailer.Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewDispatcher(rec)).RegisterRoutes(r.Group("/"))
	return r
}

func TestNotify_Success(t *testing.T) {
	rec := mailer.NewRecorder()
	r := setupRouter(rec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notify",
		bytes.NewBufferString(`{"email":"cs001@student.example.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	sent := rec.Sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, "cs001@student.example.edu", sent[0].To)
	assert.Equal(t, "Booking Approved ✅", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "has been approved")
}

func TestNotify_ProviderFailure(t *testing.T) {
	rec := mailer.NewRecorder()
	rec.Err = errors.New("provider rejected with status 503")
	r := setupRouter(rec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notify",
		bytes.NewBufferString(`{"email":"cs001@student.example.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "provider rejected")
}

func TestNotify_BadBody(t *testing.T) {
	r := setupRouter(mailer.NewRecorder())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notify",
		bytes.NewBufferString(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
