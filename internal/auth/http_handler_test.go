package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_Login(t *testing.T) {
	handler := NewHTTPHandler(testService(t))

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
		handler.Login(w, r)
		return w
	}

	t.Run("success returns token", func(t *testing.T) {
		w := post(`{"username":"admin","password":"letmein"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("bad password", func(t *testing.T) {
		w := post(`{"username":"admin","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := post(`{"username":"admin"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
		handler.Login(w, r)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("unconfigured service", func(t *testing.T) {
		bare := NewHTTPHandler(NewService(Config{}))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"username":"a","password":"b"}`))
		bare.Login(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Server configuration error.")
	})
}

func TestMiddleware(t *testing.T) {
	svc := testService(t)
	var reached bool
	protected := Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no header", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("malformed header", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("Authorization", "Basic abc")
		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("expired token", func(t *testing.T) {
		reached = false
		expired, err := GenerateToken("test-secret", -TokenTTL)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("Authorization", "Bearer "+expired)
		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		reached = false
		token, err := svc.Login("admin", "letmein")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})
}
