package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ParthMistry57/Blog-application/internal/application"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestErrStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: bad input", application.ErrValidation), http.StatusBadRequest},
		{application.ErrInvalidCredentials, http.StatusUnauthorized},
		{application.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("%w: nope", application.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: post", application.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: slug already taken", application.ErrConflict), http.StatusConflict},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := record(func(c *gin.Context) { Err(c, tc.err) })
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
		assert.Contains(t, w.Body.String(), `"message"`)
	}
}

func TestErrHidesInternalCause(t *testing.T) {
	w := record(func(c *gin.Context) { Err(c, errors.New("dsn=mongodb://secret")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.Contains(t, w.Body.String(), "Server error")
}

func TestMessageShape(t *testing.T) {
	w := record(func(c *gin.Context) { Message(c, http.StatusOK, "done") })
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())
}

func TestValidationErrorShape(t *testing.T) {
	w := record(func(c *gin.Context) {
		ValidationError(c, map[string]string{"title": "is required"})
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"invalid payload","errors":{"title":"is required"}}`, w.Body.String())
}
