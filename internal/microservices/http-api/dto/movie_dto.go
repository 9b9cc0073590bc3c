package dto

import (
	"mime/multipart"
	"sort"
	"time"

	"moviehub/internal/microservices/http-api/models"
)

// MovieActorCreationDTO is one element of the "actors" form field.
type MovieActorCreationDTO struct {
	ID        int64  `json:"id" binding:"required,gt=0"`
	Character string `json:"character" binding:"max=100"`
}

// MovieCreationDTO is bound from multipart/form-data on POST and PUT
// /api/movies. GenreIDs, CinemaIDs and Actors arrive as JSON-encoded form
// values and are decoded by the handler before validation.
type MovieCreationDTO struct {
	Title       string                `form:"title" binding:"required,max=300"`
	Summary     string                `form:"summary"`
	ReleaseDate time.Time             `form:"releaseDate" binding:"required" time_format:"2006-01-02"`
	InTheaters  bool                  `form:"inTheaters"`
	Poster      *multipart.FileHeader `form:"poster"`

	GenreIDs  []int64                 `form:"-" json:"genreIds" binding:"unique,dive,gt=0"`
	CinemaIDs []int64                 `form:"-" json:"cinemaIds" binding:"unique,dive,gt=0"`
	Actors    []MovieActorCreationDTO `form:"-" json:"actors" binding:"unique=ID,dive"`
}

// MovieFilterDTO is bound from the query of GET /api/movies/filter.
type MovieFilterDTO struct {
	PaginationDTO
	Title            string `form:"title"`
	InTheaters       bool   `form:"inTheaters"`
	UpcomingReleases bool   `form:"upcomingReleases"`
	GenreID          int64  `form:"genreId" binding:"gte=0"`
}

type MovieDTO struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Summary     string          `json:"summary"`
	ReleaseDate time.Time       `json:"releaseDate"`
	InTheaters  bool            `json:"inTheaters"`
	Poster      string          `json:"poster"`
	Genres      []GenreDTO      `json:"genres"`
	Cinemas     []CinemaDTO     `json:"cinemas"`
	Actors      []MovieActorDTO `json:"actors"`
}

type LandingPageDTO struct {
	UpcomingReleases []MovieDTO `json:"upcomingReleases"`
	InTheaters       []MovieDTO `json:"inTheaters"`
}

// MovieSupportDataDTO feeds the create form.
type MovieSupportDataDTO struct {
	Genres  []GenreDTO  `json:"genres"`
	Cinemas []CinemaDTO `json:"cinemas"`
}

// MovieEditDataDTO feeds the edit form.
type MovieEditDataDTO struct {
	Movie              MovieDTO        `json:"movie"`
	SelectedGenres     []GenreDTO      `json:"selectedGenres"`
	NonSelectedGenres  []GenreDTO      `json:"nonSelectedGenres"`
	SelectedCinemas    []CinemaDTO     `json:"selectedCinemas"`
	NonSelectedCinemas []CinemaDTO     `json:"nonSelectedCinemas"`
	Actors             []MovieActorDTO `json:"actors"`
}

// ToModel builds a movie with fresh join rows. Billing order follows the
// position in Actors. The poster upload is never mapped.
func (d MovieCreationDTO) ToModel() models.Movie {
	var m models.Movie
	d.ApplyTo(&m)
	return m
}

// ApplyTo overwrites every scalar and association of m except ID and Poster.
func (d MovieCreationDTO) ApplyTo(m *models.Movie) {
	m.Title = d.Title
	m.Summary = d.Summary
	m.ReleaseDate = d.ReleaseDate
	m.InTheaters = d.InTheaters

	m.MovieGenres = make([]models.MovieGenre, 0, len(d.GenreIDs))
	for _, id := range d.GenreIDs {
		m.MovieGenres = append(m.MovieGenres, models.MovieGenre{MovieID: m.ID, GenreID: id})
	}

	m.MovieCinemas = make([]models.MovieCinema, 0, len(d.CinemaIDs))
	for _, id := range d.CinemaIDs {
		m.MovieCinemas = append(m.MovieCinemas, models.MovieCinema{MovieID: m.ID, CinemaID: id})
	}

	m.MovieActors = make([]models.MovieActor, 0, len(d.Actors))
	for i, a := range d.Actors {
		m.MovieActors = append(m.MovieActors, models.MovieActor{
			MovieID:      m.ID,
			ActorID:      a.ID,
			Character:    a.Character,
			BillingOrder: i,
		})
	}
}

func MovieFromModel(m models.Movie) MovieDTO {
	out := MovieDTO{
		ID:          m.ID,
		Title:       m.Title,
		Summary:     m.Summary,
		ReleaseDate: m.ReleaseDate,
		InTheaters:  m.InTheaters,
		Poster:      m.Poster,
		Genres:      make([]GenreDTO, 0, len(m.MovieGenres)),
		Cinemas:     make([]CinemaDTO, 0, len(m.MovieCinemas)),
	}

	for _, mg := range m.MovieGenres {
		out.Genres = append(out.Genres, GenreDTO{ID: mg.GenreID, Name: mg.Genre.Name})
	}
	for _, mc := range m.MovieCinemas {
		c := CinemaFromModel(mc.Cinema)
		c.ID = mc.CinemaID
		out.Cinemas = append(out.Cinemas, c)
	}

	out.Actors = MovieActorsFromModels(m.MovieActors)
	sort.SliceStable(out.Actors, func(i, j int) bool {
		return out.Actors[i].Order < out.Actors[j].Order
	})
	return out
}

func MoviesFromModels(list []models.Movie) []MovieDTO {
	out := make([]MovieDTO, 0, len(list))
	for _, m := range list {
		out = append(out, MovieFromModel(m))
	}
	return out
}

// NewMovieEditData splits the full genre and cinema lists into the ones
// linked to m and the rest, keeping the order of the full lists.
func NewMovieEditData(m models.Movie, allGenres []models.Genre, allCinemas []models.Cinema) MovieEditDataDTO {
	movie := MovieFromModel(m)
	out := MovieEditDataDTO{
		Movie:              movie,
		SelectedGenres:     movie.Genres,
		NonSelectedGenres:  make([]GenreDTO, 0),
		SelectedCinemas:    movie.Cinemas,
		NonSelectedCinemas: make([]CinemaDTO, 0),
		Actors:             movie.Actors,
	}

	selectedGenres := make(map[int64]struct{}, len(m.MovieGenres))
	for _, mg := range m.MovieGenres {
		selectedGenres[mg.GenreID] = struct{}{}
	}
	for _, g := range allGenres {
		if _, ok := selectedGenres[g.ID]; !ok {
			out.NonSelectedGenres = append(out.NonSelectedGenres, GenreFromModel(g))
		}
	}

	selectedCinemas := make(map[int64]struct{}, len(m.MovieCinemas))
	for _, mc := range m.MovieCinemas {
		selectedCinemas[mc.CinemaID] = struct{}{}
	}
	for _, c := range allCinemas {
		if _, ok := selectedCinemas[c.ID]; !ok {
			out.NonSelectedCinemas = append(out.NonSelectedCinemas, CinemaFromModel(c))
		}
	}
	return out
}
