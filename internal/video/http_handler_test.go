package video

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	videos    []Video
	created   *Video
	updated   *Video
	updateErr error
	deleted   []int64
}

func (s *stubRepo) List(ctx context.Context) ([]Video, error) {
	return s.videos, nil
}

func (s *stubRepo) Create(ctx context.Context, v Video) (int64, error) {
	s.created = &v
	return 1, nil
}

func (s *stubRepo) Update(ctx context.Context, v Video) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = &v
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := &stubRepo{}
		handler := NewHTTPHandler(NewService(repo))

		payload := `{"title":"Intro to Chemistry","youtube_url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","academic_year":"2024-25"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books?type=videos", bytes.NewBufferString(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, repo.created)
		assert.Equal(t, "2024-25", repo.created.AcademicYear)
	})

	t.Run("short youtu.be link accepted", func(t *testing.T) {
		repo := &stubRepo{}
		handler := NewHTTPHandler(NewService(repo))

		payload := `{"title":"T","youtube_url":"https://youtu.be/dQw4w9WgXcQ","academic_year":"2024-25"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books?type=videos", bytes.NewBufferString(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("non-youtube url rejected", func(t *testing.T) {
		repo := &stubRepo{}
		handler := NewHTTPHandler(NewService(repo))

		payload := `{"title":"T","youtube_url":"https://vimeo.com/12345","academic_year":"2024-25"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books?type=videos", bytes.NewBufferString(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, repo.created)
	})

	t.Run("missing academic year rejected", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{}))

		payload := `{"title":"T","youtube_url":"https://youtu.be/dQw4w9WgXcQ"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books?type=videos", bytes.NewBufferString(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	payload := `{"title":"T","youtube_url":"https://youtu.be/dQw4w9WgXcQ","academic_year":"2023-24"}`

	t.Run("updated", func(t *testing.T) {
		repo := &stubRepo{}
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books?type=videos&id=4", bytes.NewBufferString(payload))
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, repo.updated)
		assert.Equal(t, int64(4), repo.updated.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books?type=videos", bytes.NewBufferString(payload))
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{updateErr: ErrNotFound}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books?type=videos&id=99", bytes.NewBufferString(payload))
		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	repo := &stubRepo{}
	handler := NewHTTPHandler(NewService(repo))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/books?type=videos&id=6", nil)
	handler.Delete(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{6}, repo.deleted)
}
