package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/middleware"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/service"
)

func sampleMovie() models.Movie {
	return models.Movie{
		ID:          7,
		Title:       "Spider-Man",
		ReleaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		InTheaters:  true,
		MovieGenres: []models.MovieGenre{
			{MovieID: 7, GenreID: 1, Genre: models.Genre{ID: 1, Name: "Action"}},
		},
		MovieActors: []models.MovieActor{
			{MovieID: 7, ActorID: 11, Character: "MJ", BillingOrder: 1, Actor: models.Actor{ID: 11, Name: "Zendaya"}},
			{MovieID: 7, ActorID: 10, Character: "Peter", BillingOrder: 0, Actor: models.Actor{ID: 10, Name: "Tom Holland"}},
		},
	}
}

func TestMovieHandler_Landing(t *testing.T) {
	f := newFixture(t)
	m := sampleMovie()
	f.movies.On("Landing", mock.Anything).Return([]models.Movie{}, []models.Movie{m}, nil)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.LandingPageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.UpcomingReleases)
	assert.NotNil(t, got.UpcomingReleases)
	require.Len(t, got.InTheaters, 1)
	assert.Equal(t, "Spider-Man", got.InTheaters[0].Title)
}

func TestMovieHandler_Filter(t *testing.T) {
	f := newFixture(t)
	want := dto.MovieFilterDTO{
		PaginationDTO: dto.PaginationDTO{Page: 2, PageSize: 5},
		Title:         "spi",
		InTheaters:    true,
		GenreID:       3,
	}
	f.movies.On("Filter", mock.Anything, want).Return([]models.Movie{sampleMovie()}, int64(6), nil)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/filter?title=spi&inTheaters=true&genreId=3&page=2&pageSize=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "6", w.Header().Get(middleware.HeaderTotalCount))

	var got []dto.MovieDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Actors, 2)
	assert.Equal(t, "Tom Holland", got[0].Actors[0].Name)
	assert.Equal(t, "Zendaya", got[0].Actors[1].Name)
}

func TestMovieHandler_Filter_InvalidQuery(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/filter?genreId=-1", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"genreId"}, problemFields(decodeProblem(t, w)))
}

func TestMovieHandler_SearchActors(t *testing.T) {
	f := newFixture(t)
	f.actors.On("SearchByName", mock.Anything, "Tom").Return([]models.Actor{{
		ID:        10,
		Name:      "Tom Holland",
		Photo:     "http://x/uploads/actors/t.jpg",
		BirthDate: time.Date(1996, 6, 1, 0, 0, 0, 0, time.UTC),
	}}, nil)

	t.Run("json string body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/search-by-name", strings.NewReader(`"Tom"`))
		w := f.do(req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`[{"id":10,"name":"Tom Holland","photo":"http://x/uploads/actors/t.jpg","character":"","order":0}]`,
			w.Body.String())
	})

	t.Run("query", func(t *testing.T) {
		w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/search-by-name?name=Tom", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("object body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/search-by-name", strings.NewReader(`{"name":"Tom"}`))
		w := f.do(req)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMovieHandler_SupportData(t *testing.T) {
	f := newFixture(t)
	f.movies.On("SupportData", mock.Anything).Return(
		[]models.Genre{{ID: 1, Name: "Action"}},
		[]models.Cinema{{ID: 2, Name: "Agora", Location: models.Point{Latitude: 18.47, Longitude: -69.9}}},
		nil,
	)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/create-support-data", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.MovieSupportDataDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []dto.GenreDTO{{ID: 1, Name: "Action"}}, got.Genres)
	require.Len(t, got.Cinemas, 1)
	assert.InDelta(t, 18.47, got.Cinemas[0].Latitude, 1e-9)
}

func TestMovieHandler_EditSupportData(t *testing.T) {
	f := newFixture(t)
	m := sampleMovie()
	f.movies.On("EditData", mock.Anything, int64(7)).Return(
		&m,
		[]models.Genre{{ID: 1, Name: "Action"}, {ID: 2, Name: "Drama"}},
		[]models.Cinema{},
		nil,
	)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/edit-support-data/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.MovieEditDataDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []dto.GenreDTO{{ID: 1, Name: "Action"}}, got.SelectedGenres)
	assert.Equal(t, []dto.GenreDTO{{ID: 2, Name: "Drama"}}, got.NonSelectedGenres)
	assert.Len(t, got.Actors, 2)
}

func TestMovieHandler_Get(t *testing.T) {
	f := newFixture(t)
	m := sampleMovie()
	f.movies.On("GetByID", mock.Anything, int64(7)).Return(&m, nil)
	f.movies.On("GetByID", mock.Anything, int64(8)).Return(nil, service.ErrNotFound)
	f.movies.On("GetByID", mock.Anything, int64(9)).Return(nil, errors.New("connection reset"))

	t.Run("found", func(t *testing.T) {
		w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/7", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var got dto.MovieDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, []dto.CinemaDTO{}, got.Cinemas)
	})

	t.Run("not found has empty body", func(t *testing.T) {
		w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/8", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		w := f.do(httptest.NewRequest(http.MethodGet, "/api/movies/9", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, "internal server error", p.Detail)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestMovieHandler_Create(t *testing.T) {
	f := newFixture(t)
	f.movies.On("Create", mock.Anything, mock.MatchedBy(func(in dto.MovieCreationDTO) bool {
		return in.Title == "Spider-Man" &&
			in.ReleaseDate.Format("2006-01-02") == "2024-05-01" &&
			in.InTheaters &&
			assert.ObjectsAreEqual([]int64{1, 3}, in.GenreIDs) &&
			len(in.CinemaIDs) == 0 &&
			len(in.Actors) == 2 &&
			in.Actors[0] == dto.MovieActorCreationDTO{ID: 10, Character: "Peter"} &&
			in.Actors[1] == dto.MovieActorCreationDTO{ID: 11, Character: "MJ"} &&
			in.Poster == nil
	})).Return(int64(7), nil)

	w := f.do(formRequest(t, http.MethodPost, "/api/movies", map[string]string{
		"title":       "Spider-Man",
		"releaseDate": "2024-05-01",
		"inTheaters":  "true",
		"genreIds":    "[1,3]",
		"actors":      `[{"id":10,"character":"Peter"},{"id":11,"character":"MJ"}]`,
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/movies/7", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestMovieHandler_Create_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
		want   []string
	}{
		{
			name:   "missing required",
			fields: map[string]string{"summary": "no title"},
			want:   []string{"releaseDate", "title"},
		},
		{
			name:   "malformed json field",
			fields: map[string]string{"title": "X", "releaseDate": "2024-05-01", "genreIds": "[1,"},
			want:   []string{"genreIds"},
		},
		{
			name:   "duplicate actors",
			fields: map[string]string{"title": "X", "releaseDate": "2024-05-01", "actors": `[{"id":10},{"id":10}]`},
			want:   []string{"actors"},
		},
		{
			name:   "non positive genre id",
			fields: map[string]string{"title": "X", "releaseDate": "2024-05-01", "genreIds": "[0]"},
			want:   []string{"genreIds[0]"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			w := f.do(formRequest(t, http.MethodPost, "/api/movies", tc.fields))
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, problemFields(decodeProblem(t, w)))
		})
	}
}

func TestMovieHandler_Create_ServiceValidation(t *testing.T) {
	f := newFixture(t)
	f.movies.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), service.NewValidationError("genreIds", "references a missing record"))

	w := f.do(formRequest(t, http.MethodPost, "/api/movies", map[string]string{
		"title": "X", "releaseDate": "2024-05-01", "genreIds": "[99]",
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	p := decodeProblem(t, w)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, dto.FieldError{Field: "genreIds", Message: "references a missing record"}, p.Errors[0])
}

func TestMovieHandler_Update(t *testing.T) {
	f := newFixture(t)
	f.movies.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(in dto.MovieCreationDTO) bool {
		return in.Title == "Renamed"
	})).Return(nil)
	f.movies.On("Update", mock.Anything, int64(8), mock.Anything).Return(service.ErrNotFound)

	w := f.do(formRequest(t, http.MethodPut, "/api/movies/7", map[string]string{
		"title": "Renamed", "releaseDate": "2024-05-01",
	}))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(formRequest(t, http.MethodPut, "/api/movies/8", map[string]string{
		"title": "Renamed", "releaseDate": "2024-05-01",
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_Delete(t *testing.T) {
	f := newFixture(t)
	f.movies.On("Delete", mock.Anything, int64(7)).Return(nil)
	f.movies.On("Delete", mock.Anything, int64(404)).Return(service.ErrNotFound)

	w := f.do(jsonRequest(http.MethodDelete, "/api/movies/7", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(jsonRequest(http.MethodDelete, "/api/movies/404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
