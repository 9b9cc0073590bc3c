package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"testing"

	"moviehub/internal/events"
	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func upload(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("poster", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("PUT", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })

	return req.MultipartForm.File["poster"][0]
}

// posterService wires a movie service to a LocalStore in a temp dir.
func posterService(t *testing.T) (*movieService, *MockMovieRepository, *MockPublisher, *storage.LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "http://cdn", 0)
	require.NoError(t, err)

	repo := new(MockMovieRepository)
	pub := new(MockPublisher)
	svc := NewMovieService(repo, new(MockGenreRepository), new(MockCinemaRepository), store, NewNotifier(pub), DefaultLimits()).(*movieService)
	return svc, repo, pub, store, dir
}

func postersOnDisk(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, storage.ContainerMovies))
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMovieService_UpdateRejectedKeepsOldPoster(t *testing.T) {
	ctx := context.Background()
	svc, repo, pub, store, dir := posterService(t)

	oldURL, err := store.Save(ctx, storage.ContainerMovies, upload(t, "old.png", []byte("old")))
	require.NoError(t, err)

	repo.On("GetByID", ctx, int64(5)).Return(&models.Movie{ID: 5, Title: "Old", Poster: oldURL}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Movie")).Return(&repository.ForeignKeyError{
		Table:      "movie_genres",
		Constraint: "fk_movie_genres_genre",
	})

	err = svc.Update(ctx, 5, dto.MovieCreationDTO{
		Title:    "New",
		Poster:   upload(t, "new.png", []byte("new")),
		GenreIDs: []int64{99},
	})
	require.NoError(t, svc.events.Wait(ctx))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "genreIds")
	assert.Equal(t, []string{path.Base(oldURL)}, postersOnDisk(t, dir))
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestMovieService_UpdateSwapsPosterAfterWrite(t *testing.T) {
	ctx := context.Background()
	svc, repo, pub, store, dir := posterService(t)

	oldURL, err := store.Save(ctx, storage.ContainerMovies, upload(t, "old.png", []byte("old")))
	require.NoError(t, err)

	var written string
	repo.On("GetByID", ctx, int64(5)).Return(&models.Movie{ID: 5, Poster: oldURL}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Movie")).Return(nil).Run(func(args mock.Arguments) {
		written = args.Get(1).(*models.Movie).Poster
		// the old file must still be there while the row is written
		assert.Len(t, postersOnDisk(t, dir), 2)
	})
	pub.On("Publish", mock.Anything, eventOfType(events.MovieUpdated, 5)).Return(nil)

	err = svc.Update(ctx, 5, dto.MovieCreationDTO{Title: "New", Poster: upload(t, "new.png", []byte("new"))})
	require.NoError(t, svc.events.Wait(ctx))

	require.NoError(t, err)
	assert.NotEqual(t, oldURL, written)
	assert.Equal(t, []string{path.Base(written)}, postersOnDisk(t, dir))
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}
