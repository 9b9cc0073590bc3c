package service

import (
	"context"
	"strings"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/storage"
)

type ActorService interface {
	List(ctx context.Context, p dto.PaginationDTO) ([]models.Actor, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Actor, error)
	SearchByName(ctx context.Context, name string) ([]models.Actor, error)
	Create(ctx context.Context, in dto.ActorCreationDTO) (int64, error)
	Update(ctx context.Context, id int64, in dto.ActorCreationDTO) error
	Delete(ctx context.Context, id int64) error
}

type actorService struct {
	repo   repository.ActorRepository
	files  storage.FileStore
	events *Notifier
	limits Limits
}

func NewActorService(repo repository.ActorRepository, files storage.FileStore, notes *Notifier, limits Limits) ActorService {
	return &actorService{
		repo:   repo,
		files:  files,
		events: orNoop(notes),
		limits: limits,
	}
}

func (s *actorService) List(ctx context.Context, p dto.PaginationDTO) ([]models.Actor, int64, error) {
	return s.repo.List(ctx, s.limits.page(p))
}

func (s *actorService) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchByName returns at most SearchLimit actors whose name contains name.
// Blank input yields an empty list without a query.
func (s *actorService) SearchByName(ctx context.Context, name string) ([]models.Actor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []models.Actor{}, nil
	}
	return s.repo.SearchByName(ctx, name, s.limits.SearchLimit)
}

func (s *actorService) Create(ctx context.Context, in dto.ActorCreationDTO) (int64, error) {
	a := in.ToModel()

	if in.Photo != nil {
		url, err := s.files.Save(ctx, storage.ContainerActors, in.Photo)
		if err != nil {
			return 0, uploadError("photo", err)
		}
		a.Photo = url
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		s.events.removeAsset(ctx, s.files, a.Photo, storage.ContainerActors, 0)
		return 0, translate(err)
	}
	return a.ID, nil
}

func (s *actorService) Update(ctx context.Context, id int64, in dto.ActorCreationDTO) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	in.ApplyTo(a)
	oldPhoto := a.Photo
	if in.Photo != nil {
		url, err := s.files.Save(ctx, storage.ContainerActors, in.Photo)
		if err != nil {
			return uploadError("photo", err)
		}
		a.Photo = url
	}

	return translate(s.events.replaceAsset(ctx, s.files, storage.ContainerActors, oldPhoto, a.Photo, a.ID, func() error {
		return s.repo.Update(ctx, a)
	}))
}

func (s *actorService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.events.removeAsset(ctx, s.files, a.Photo, storage.ContainerActors, a.ID)
	return nil
}
