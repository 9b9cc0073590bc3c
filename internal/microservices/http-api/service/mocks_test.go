package service

import (
	"context"
	"mime/multipart"
	"time"

	"moviehub/internal/events"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Filter(ctx context.Context, f repository.MovieFilter, p repository.Page) ([]models.Movie, int64, error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieRepository) ListUpcoming(ctx context.Context, today time.Time, limit int) ([]models.Movie, error) {
	args := m.Called(ctx, today, limit)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) ListInTheaters(ctx context.Context, limit int) ([]models.Movie, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) List(ctx context.Context, p repository.Page) ([]models.Genre, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]models.Genre), args.Get(1).(int64), args.Error(2)
}

func (m *MockGenreRepository) All(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Create(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGenreRepository) Update(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGenreRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCinemaRepository struct {
	mock.Mock
}

func (m *MockCinemaRepository) List(ctx context.Context, p repository.Page) ([]models.Cinema, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]models.Cinema), args.Get(1).(int64), args.Error(2)
}

func (m *MockCinemaRepository) All(ctx context.Context) ([]models.Cinema, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Cinema), args.Error(1)
}

func (m *MockCinemaRepository) GetByID(ctx context.Context, id int64) (*models.Cinema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cinema), args.Error(1)
}

func (m *MockCinemaRepository) Create(ctx context.Context, c *models.Cinema) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCinemaRepository) Update(ctx context.Context, c *models.Cinema) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCinemaRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) List(ctx context.Context, p repository.Page) ([]models.Actor, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]models.Actor), args.Get(1).(int64), args.Error(2)
}

func (m *MockActorRepository) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Actor), args.Error(1)
}

func (m *MockActorRepository) SearchByName(ctx context.Context, name string, limit int) ([]models.Actor, error) {
	args := m.Called(ctx, name, limit)
	return args.Get(0).([]models.Actor), args.Error(1)
}

func (m *MockActorRepository) Create(ctx context.Context, a *models.Actor) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockActorRepository) Update(ctx context.Context, a *models.Actor) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockActorRepository) Delete(ctx context.Context, id int64) (*models.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Actor), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, container string, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, container, file)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, url, container string) error {
	return m.Called(ctx, url, container).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, ev events.Event) error {
	return m.Called(ctx, ev).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// eventOfType matches an event by type and entity id.
func eventOfType(typ string, id int64) any {
	return mock.MatchedBy(func(ev events.Event) bool {
		return ev.Type == typ && ev.EntityID == id
	})
}
