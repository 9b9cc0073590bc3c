package service

import (
	"context"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
)

type CinemaService interface {
	List(ctx context.Context, p dto.PaginationDTO) ([]models.Cinema, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Cinema, error)
	Create(ctx context.Context, in dto.CinemaCreationDTO) (int64, error)
	Update(ctx context.Context, id int64, in dto.CinemaCreationDTO) error
	Delete(ctx context.Context, id int64) error
}

type cinemaService struct {
	repo   repository.CinemaRepository
	limits Limits
}

func NewCinemaService(repo repository.CinemaRepository, limits Limits) CinemaService {
	return &cinemaService{repo: repo, limits: limits}
}

func (s *cinemaService) List(ctx context.Context, p dto.PaginationDTO) ([]models.Cinema, int64, error) {
	return s.repo.List(ctx, s.limits.page(p))
}

func (s *cinemaService) GetByID(ctx context.Context, id int64) (*models.Cinema, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *cinemaService) Create(ctx context.Context, in dto.CinemaCreationDTO) (int64, error) {
	c := in.ToModel()
	if err := s.repo.Create(ctx, &c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *cinemaService) Update(ctx context.Context, id int64, in dto.CinemaCreationDTO) error {
	c := models.Cinema{ID: id}
	in.ApplyTo(&c)
	return s.repo.Update(ctx, &c)
}

func (s *cinemaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
