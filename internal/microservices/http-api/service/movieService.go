package service

import (
	"context"
	"time"

	"moviehub/internal/events"
	"moviehub/internal/logging"
	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/storage"
)

type MovieService interface {
	// Landing returns the upcoming releases and the movies in theaters.
	Landing(ctx context.Context) (upcoming, inTheaters []models.Movie, err error)
	Filter(ctx context.Context, f dto.MovieFilterDTO) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	SupportData(ctx context.Context) ([]models.Genre, []models.Cinema, error)
	EditData(ctx context.Context, id int64) (*models.Movie, []models.Genre, []models.Cinema, error)
	Create(ctx context.Context, in dto.MovieCreationDTO) (int64, error)
	Update(ctx context.Context, id int64, in dto.MovieCreationDTO) error
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	repo    repository.MovieRepository
	genres  repository.GenreRepository
	cinemas repository.CinemaRepository
	files   storage.FileStore
	events  *Notifier
	limits  Limits
	now     func() time.Time
}

func NewMovieService(
	repo repository.MovieRepository,
	genres repository.GenreRepository,
	cinemas repository.CinemaRepository,
	files storage.FileStore,
	notes *Notifier,
	limits Limits,
) MovieService {
	return &movieService{
		repo:    repo,
		genres:  genres,
		cinemas: cinemas,
		files:   files,
		events:  orNoop(notes),
		limits:  limits,
		now:     time.Now,
	}
}

func (s *movieService) Landing(ctx context.Context) ([]models.Movie, []models.Movie, error) {
	upcoming, err := s.repo.ListUpcoming(ctx, dateOnly(s.now()), s.limits.LandingPageSize)
	if err != nil {
		return nil, nil, err
	}
	inTheaters, err := s.repo.ListInTheaters(ctx, s.limits.LandingPageSize)
	if err != nil {
		return nil, nil, err
	}
	return upcoming, inTheaters, nil
}

func (s *movieService) Filter(ctx context.Context, f dto.MovieFilterDTO) ([]models.Movie, int64, error) {
	filter := repository.MovieFilter{
		Title:            f.Title,
		InTheaters:       f.InTheaters,
		UpcomingReleases: f.UpcomingReleases,
		GenreID:          f.GenreID,
		Today:            dateOnly(s.now()),
	}
	return s.repo.Filter(ctx, filter, s.limits.page(f.PaginationDTO))
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *movieService) SupportData(ctx context.Context) ([]models.Genre, []models.Cinema, error) {
	genres, err := s.genres.All(ctx)
	if err != nil {
		return nil, nil, err
	}
	cinemas, err := s.cinemas.All(ctx)
	if err != nil {
		return nil, nil, err
	}
	return genres, cinemas, nil
}

func (s *movieService) EditData(ctx context.Context, id int64) (*models.Movie, []models.Genre, []models.Cinema, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	genres, cinemas, err := s.SupportData(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return m, genres, cinemas, nil
}

func (s *movieService) Create(ctx context.Context, in dto.MovieCreationDTO) (int64, error) {
	m := in.ToModel()
	assignBillingOrder(m.MovieActors)

	if in.Poster != nil {
		url, err := s.files.Save(ctx, storage.ContainerMovies, in.Poster)
		if err != nil {
			return 0, uploadError("poster", err)
		}
		m.Poster = url
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		// the row never existed, so the fresh poster is dropped right away
		s.events.removeAsset(ctx, s.files, m.Poster, storage.ContainerMovies, 0)
		return 0, translate(err)
	}

	logging.FromContext(ctx).Info("movie created", "movie_id", m.ID, "title", m.Title)
	s.events.publish(ctx, events.Event{Type: events.MovieCreated, EntityID: m.ID, Title: m.Title})
	return m.ID, nil
}

func (s *movieService) Update(ctx context.Context, id int64, in dto.MovieCreationDTO) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	in.ApplyTo(m)
	assignBillingOrder(m.MovieActors)

	oldPoster := m.Poster
	if in.Poster != nil {
		url, err := s.files.Save(ctx, storage.ContainerMovies, in.Poster)
		if err != nil {
			return uploadError("poster", err)
		}
		m.Poster = url
	}

	err = s.events.replaceAsset(ctx, s.files, storage.ContainerMovies, oldPoster, m.Poster, m.ID, func() error {
		return s.repo.Update(ctx, m)
	})
	if err != nil {
		return translate(err)
	}

	s.events.publish(ctx, events.Event{Type: events.MovieUpdated, EntityID: m.ID, Title: m.Title})
	return nil
}

// Delete removes the row first; the poster goes afterwards and only
// best-effort.
func (s *movieService) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.events.removeAsset(ctx, s.files, m.Poster, storage.ContainerMovies, m.ID)
	s.events.publish(ctx, events.Event{Type: events.MovieDeleted, EntityID: m.ID, Title: m.Title})
	return nil
}

// assignBillingOrder rewrites the cast order from list position.
func assignBillingOrder(cast []models.MovieActor) {
	for i := range cast {
		cast[i].BillingOrder = i
	}
}
