package favorite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_Favorites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, branches := newService(t)
	branches.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	branches.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	r := gin.New()
	rg := r.Group("/api/v1", func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(rg)

	do := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/api/v1/favorites/3").Code)
	assert.Equal(t, http.StatusConflict, do(http.MethodPost, "/api/v1/favorites/3").Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodPost, "/api/v1/favorites/9").Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/api/v1/favorites/abc").Code)

	w := do(http.MethodGet, "/api/v1/favorites/3/check")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_favorite":true`)

	w = do(http.MethodGet, "/api/v1/favorites")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	assert.Equal(t, http.StatusOK, do(http.MethodDelete, "/api/v1/favorites/3").Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodDelete, "/api/v1/favorites/3").Code)
}
