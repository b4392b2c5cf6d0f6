package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/auth"
	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/database/books"
	"github.com/openshelf/catalog/internal/database/comments"
	"github.com/openshelf/catalog/internal/entities"
)

var csrfTokenInput = regexp.MustCompile(`name="gorilla\.csrf\.Token" value="([^"]+)"`)

func setupCSRFTest(t *testing.T) (*catalogFixture, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_csrf_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(config.Database{Path: dbPath})
	require.NoError(t, err)

	bookRepo := books.NewRepository(db.DB)
	commentRepo := comments.NewRepository(db.DB)

	router := NewRouter(RouterConfig{
		Books:         bookRepo,
		Comments:      commentRepo,
		Authorizer:    auth.NewTokenAuthorizer(config.Auth{AdminToken: testAdminToken}),
		Database:      db,
		TemplatesPath: "../../templates",
		StaticPath:    "../../static",
		CSRFSecret:    []byte("32-byte-long-auth-key-for-tests!"),
		Version:       "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return &catalogFixture{router: router, books: bookRepo, comments: commentRepo}, cleanup
}

func TestCSRFProtection(t *testing.T) {
	t.Run("rejects a tokenless POST without touching the store", func(t *testing.T) {
		f, cleanup := setupCSRFTest(t)
		defer cleanup()

		require.NoError(t, f.books.CreateBook(&entities.Book{Title: "Dune", Author: "Frank Herbert"}))

		w := f.postForm("/edit-notes", url.Values{"id": {"1"}, "notes": {"forged"}})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden - invalid CSRF token")

		book, err := f.books.GetBookByID(1)
		require.NoError(t, err)
		assert.Empty(t, book.Notes)
	})

	t.Run("rejects a forged token without touching the store", func(t *testing.T) {
		f, cleanup := setupCSRFTest(t)
		defer cleanup()

		w := f.postForm("/add", url.Values{
			"title":              {"Forged"},
			"author":             {"Nobody"},
			"gorilla.csrf.Token": {"not-a-real-token"},
		})
		assert.Equal(t, http.StatusForbidden, w.Code)

		all, err := f.books.ListBooks()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("lets GET requests through and embeds a token in forms", func(t *testing.T) {
		f, cleanup := setupCSRFTest(t)
		defer cleanup()

		w := f.get("/add")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Regexp(t, csrfTokenInput, w.Body.String())
	})

	t.Run("accepts a POST carrying the issued token and cookie", func(t *testing.T) {
		f, cleanup := setupCSRFTest(t)
		defer cleanup()

		page := f.get("/add")
		require.Equal(t, http.StatusOK, page.Code)

		match := csrfTokenInput.FindStringSubmatch(page.Body.String())
		require.Len(t, match, 2)

		form := url.Values{
			"title":              {"Dune"},
			"author":             {"Frank Herbert"},
			"gorilla.csrf.Token": {match[1]},
		}
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/add", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, cookie := range page.Result().Cookies() {
			req.AddCookie(cookie)
		}
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code)

		all, err := f.books.ListBooks()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
