package service

import (
	"context"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
)

type GenreService interface {
	List(ctx context.Context, p dto.PaginationDTO) ([]models.Genre, int64, error)
	All(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, in dto.GenreCreationDTO) (int64, error)
	Update(ctx context.Context, id int64, in dto.GenreCreationDTO) error
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	repo   repository.GenreRepository
	limits Limits
}

func NewGenreService(repo repository.GenreRepository, limits Limits) GenreService {
	return &genreService{repo: repo, limits: limits}
}

func (s *genreService) List(ctx context.Context, p dto.PaginationDTO) ([]models.Genre, int64, error) {
	return s.repo.List(ctx, s.limits.page(p))
}

func (s *genreService) All(ctx context.Context) ([]models.Genre, error) {
	return s.repo.All(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, in dto.GenreCreationDTO) (int64, error) {
	g := in.ToModel()
	if err := s.repo.Create(ctx, &g); err != nil {
		return 0, err
	}
	return g.ID, nil
}

func (s *genreService) Update(ctx context.Context, id int64, in dto.GenreCreationDTO) error {
	g := models.Genre{ID: id}
	in.ApplyTo(&g)
	return s.repo.Update(ctx, &g)
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
