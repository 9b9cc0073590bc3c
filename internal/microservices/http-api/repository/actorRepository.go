package repository

import (
	"context"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActorRepository interface {
	List(ctx context.Context, p Page) ([]models.Actor, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Actor, error)
	SearchByName(ctx context.Context, name string, limit int) ([]models.Actor, error)
	Create(ctx context.Context, a *models.Actor) error
	Update(ctx context.Context, a *models.Actor) error
	// Delete removes the actor and its cast rows and returns the removed row.
	Delete(ctx context.Context, id int64) (*models.Actor, error)
}

type actorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) ActorRepository {
	return &actorRepository{db: db}
}

func (r *actorRepository) List(ctx context.Context, p Page) ([]models.Actor, int64, error) {
	var list []models.Actor
	total, err := findPage(r.db.WithContext(ctx), p, &list, byName)
	if err != nil {
		return nil, 0, wrap("list actors", err)
	}
	return list, total, nil
}

func (r *actorRepository) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	var a models.Actor
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, wrap("get actor", err)
	}
	return &a, nil
}

func (r *actorRepository) SearchByName(ctx context.Context, name string, limit int) ([]models.Actor, error) {
	var list []models.Actor
	if err := r.db.WithContext(ctx).
		Scopes(NameContains(name), byName).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, wrap("search actors", err)
	}
	return list, nil
}

func (r *actorRepository) Create(ctx context.Context, a *models.Actor) error {
	return wrap("create actor", r.db.WithContext(ctx).Create(a).Error)
}

func (r *actorRepository) Update(ctx context.Context, a *models.Actor) error {
	res := r.db.WithContext(ctx).Model(&models.Actor{}).Where("id = ?", a.ID).Updates(map[string]any{
		"name":       a.Name,
		"birth_date": a.BirthDate,
		"photo":      a.Photo,
	})
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return wrap("update actor", res.Error)
}

func (r *actorRepository) Delete(ctx context.Context, id int64) (*models.Actor, error) {
	var a models.Actor
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&a)
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	if res.Error != nil {
		return nil, wrap("delete actor", res.Error)
	}
	return &a, nil
}
