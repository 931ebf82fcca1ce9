package book

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(repo *stubRepo) *HTTPHandler {
	return NewHTTPHandler(NewService(repo, &stubAssets{}))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("pagination math", func(t *testing.T) {
		repo := &stubRepo{books: []Book{{ID: 1, Title: "A"}}, total: 25}
		handler := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?page=1&limit=12", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(3), pagination["totalPages"])
		assert.Equal(t, float64(25), pagination["totalBooks"])
	})

	t.Run("page beyond total returns empty data", func(t *testing.T) {
		repo := &stubRepo{books: []Book{}, total: 25}
		handler := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?page=99&limit=12", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Empty(t, body["data"])
	})

	t.Run("bad categoryId", func(t *testing.T) {
		handler := newTestHandler(&stubRepo{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?categoryId=abc", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repo failure", func(t *testing.T) {
		handler := newTestHandler(&stubRepo{listErr: context.DeadlineExceeded})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["error"])
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := &stubRepo{}
		handler := newTestHandler(repo)

		payload := `{"title":"The Great Gatsby","author":"Fitzgerald","categoryIds":[1,2]}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBufferString(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, repo.created)
		assert.Equal(t, "The Great Gatsby", repo.created.Title)
		assert.Equal(t, []int64{1, 2}, repo.created.CategoryIDs)
	})

	t.Run("missing title", func(t *testing.T) {
		repo := &stubRepo{}
		handler := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBufferString(`{"author":"X"}`))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, repo.created)
	})

	t.Run("pdfUrl without publicId", func(t *testing.T) {
		handler := newTestHandler(&stubRepo{})

		payload := `{"title":"T","pdfUrl":"https://cdn/x.pdf"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBufferString(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := newTestHandler(&stubRepo{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBufferString(`{not json`))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	t.Run("partial update forwards only supplied fields", func(t *testing.T) {
		repo := &stubRepo{}
		handler := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books?id=7", bytes.NewBufferString(`{"author":"New Author"}`))
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), repo.updateID)
		require.NotNil(t, repo.updated)
		assert.Equal(t, "New Author", *repo.updated.Author)
		assert.Nil(t, repo.updated.Title)
		assert.Nil(t, repo.updated.CategoryIDs)
	})

	t.Run("missing id", func(t *testing.T) {
		handler := newTestHandler(&stubRepo{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books", bytes.NewBufferString(`{}`))
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo := &stubRepo{}
		handler := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books?id=9", nil)
		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []int64{9}, repo.deleted)
	})

	t.Run("missing id", func(t *testing.T) {
		handler := newTestHandler(&stubRepo{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books", nil)
		handler.Delete(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
