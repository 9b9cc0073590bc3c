package service

import (
	"context"
	"testing"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GenreServiceSuite struct {
	suite.Suite
	repo *MockGenreRepository
	svc  GenreService
	ctx  context.Context
}

func (s *GenreServiceSuite) SetupTest() {
	s.repo = new(MockGenreRepository)
	s.svc = NewGenreService(s.repo, DefaultLimits())
	s.ctx = context.Background()
}

func (s *GenreServiceSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *GenreServiceSuite) TestCreate() {
	s.repo.On("Create", s.ctx, &models.Genre{Name: "Drama"}).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Genre).ID = 3
	})

	id, err := s.svc.Create(s.ctx, dto.GenreCreationDTO{Name: "Drama"})

	s.Require().NoError(err)
	s.Equal(int64(3), id)
}

func (s *GenreServiceSuite) TestUpdateIsFullReplace() {
	s.repo.On("Update", s.ctx, &models.Genre{ID: 3, Name: "Comedy"}).Return(nil)

	s.NoError(s.svc.Update(s.ctx, 3, dto.GenreCreationDTO{Name: "Comedy"}))
}

func (s *GenreServiceSuite) TestUpdateUnknown() {
	s.repo.On("Update", s.ctx, mock.Anything).Return(ErrNotFound)

	s.ErrorIs(s.svc.Update(s.ctx, 99, dto.GenreCreationDTO{Name: "X"}), ErrNotFound)
}

func (s *GenreServiceSuite) TestDeleteThenGet() {
	s.repo.On("Delete", s.ctx, int64(3)).Return(nil)
	s.repo.On("GetByID", s.ctx, int64(3)).Return(nil, ErrNotFound)

	s.Require().NoError(s.svc.Delete(s.ctx, 3))
	_, err := s.svc.GetByID(s.ctx, 3)
	s.ErrorIs(err, ErrNotFound)
}

func (s *GenreServiceSuite) TestListUsesDefaults() {
	s.repo.On("List", s.ctx, repository.Page{Number: 1, Size: 10}).Return([]models.Genre{}, int64(0), nil)

	_, _, err := s.svc.List(s.ctx, dto.PaginationDTO{})
	s.NoError(err)
}

func TestGenreServiceSuite(t *testing.T) {
	suite.Run(t, new(GenreServiceSuite))
}

func TestCinemaService(t *testing.T) {
	ctx := context.Background()
	lat, lng := 40.4168, -3.7038

	t.Run("create decomposes location", func(t *testing.T) {
		repo := new(MockCinemaRepository)
		svc := NewCinemaService(repo, DefaultLimits())
		repo.On("Create", ctx, &models.Cinema{Name: "Callao", Location: models.Point{Latitude: lat, Longitude: lng}}).
			Return(nil).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Cinema).ID = 1 })

		id, err := svc.Create(ctx, dto.CinemaCreationDTO{Name: "Callao", Latitude: &lat, Longitude: &lng})

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		repo.AssertExpectations(t)
	})

	t.Run("delete unknown", func(t *testing.T) {
		repo := new(MockCinemaRepository)
		svc := NewCinemaService(repo, DefaultLimits())
		repo.On("Delete", ctx, int64(5)).Return(ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 5), ErrNotFound)
	})
}
