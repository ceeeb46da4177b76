package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the global handle at a fresh in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()
	jwtSecret = []byte("test-secret")

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// a second pooled connection to :memory: would open a second, empty database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Transaction{}))
	db = gdb

	t.Cleanup(func() { _ = sqlDB.Close() })
}

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	r := gin.New()
	setupRoutes(r)
	return r
}

// performRequest drives the engine directly, optionally carrying the session cookie.
func performRequest(r http.Handler, method, path string, body io.Reader, cookie *http.Cookie, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range resp.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}
