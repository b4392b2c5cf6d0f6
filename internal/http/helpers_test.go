package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestParseIDParam(t *testing.T) {
	t.Run("parses a numeric ID", func(t *testing.T) {
		c, _ := testContext("GET", "/book/42")
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		id, ok := parseIDParam(c, "id")
		assert.True(t, ok)
		assert.Equal(t, uint(42), id)
	})

	t.Run("rejects non-numeric IDs with 400", func(t *testing.T) {
		c, w := testContext("GET", "/book/abc")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		_, ok := parseIDParam(c, "id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects negative IDs with 400", func(t *testing.T) {
		c, w := testContext("GET", "/book/-1")
		c.Params = gin.Params{{Key: "id", Value: "-1"}}

		_, ok := parseIDParam(c, "id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminPath(t *testing.T) {
	t.Run("re-appends the presented token", func(t *testing.T) {
		c, _ := testContext("POST", "/book/1/notes?admin=secret")
		assert.Equal(t, "/book/1?admin=secret", adminPath(c, "/book/1"))
	})

	t.Run("escapes token values", func(t *testing.T) {
		c, _ := testContext("POST", "/book/1/notes?admin=a%26b")
		assert.Equal(t, "/book/1?admin=a%26b", adminPath(c, "/book/1"))
	})

	t.Run("leaves the path alone when no token was presented", func(t *testing.T) {
		c, _ := testContext("POST", "/book/1/notes")
		assert.Equal(t, "/book/1", adminPath(c, "/book/1"))
	})
}

func TestPresentedToken(t *testing.T) {
	c, _ := testContext("GET", "/?admin=secret")
	assert.Equal(t, "secret", presentedToken(c))

	c, _ = testContext("GET", "/")
	assert.Equal(t, "", presentedToken(c))
}
