package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Landing(ctx context.Context) ([]models.Movie, []models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Get(1).([]models.Movie), args.Error(2)
}

func (m *MockMovieService) Filter(ctx context.Context, f dto.MovieFilterDTO) ([]models.Movie, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) SupportData(ctx context.Context) ([]models.Genre, []models.Cinema, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Get(1).([]models.Cinema), args.Error(2)
}

func (m *MockMovieService) EditData(ctx context.Context, id int64) (*models.Movie, []models.Genre, []models.Cinema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*models.Movie), args.Get(1).([]models.Genre), args.Get(2).([]models.Cinema), args.Error(3)
}

func (m *MockMovieService) Create(ctx context.Context, in dto.MovieCreationDTO) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, in dto.MovieCreationDTO) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockActorService struct {
	mock.Mock
}

func (m *MockActorService) List(ctx context.Context, p dto.PaginationDTO) ([]models.Actor, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]models.Actor), args.Get(1).(int64), args.Error(2)
}

func (m *MockActorService) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Actor), args.Error(1)
}

func (m *MockActorService) SearchByName(ctx context.Context, name string) ([]models.Actor, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]models.Actor), args.Error(1)
}

func (m *MockActorService) Create(ctx context.Context, in dto.ActorCreationDTO) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActorService) Update(ctx context.Context, id int64, in dto.ActorCreationDTO) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockActorService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) List(ctx context.Context, p dto.PaginationDTO) ([]models.Genre, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]models.Genre), args.Get(1).(int64), args.Error(2)
}

func (m *MockGenreService) All(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreService) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreService) Create(ctx context.Context, in dto.GenreCreationDTO) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGenreService) Update(ctx context.Context, id int64, in dto.GenreCreationDTO) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockGenreService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCinemaService struct {
	mock.Mock
}

func (m *MockCinemaService) List(ctx context.Context, p dto.PaginationDTO) ([]models.Cinema, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]models.Cinema), args.Get(1).(int64), args.Error(2)
}

func (m *MockCinemaService) GetByID(ctx context.Context, id int64) (*models.Cinema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cinema), args.Error(1)
}

func (m *MockCinemaService) Create(ctx context.Context, in dto.CinemaCreationDTO) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCinemaService) Update(ctx context.Context, id int64, in dto.CinemaCreationDTO) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockCinemaService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
