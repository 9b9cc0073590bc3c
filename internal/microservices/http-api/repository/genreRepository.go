package repository

import (
	"context"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	List(ctx context.Context, p Page) ([]models.Genre, int64, error)
	All(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	Update(ctx context.Context, g *models.Genre) error
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func byName(db *gorm.DB) *gorm.DB {
	return db.Order("name asc").Order("id asc")
}

func (r *genreRepository) List(ctx context.Context, p Page) ([]models.Genre, int64, error) {
	var list []models.Genre
	total, err := findPage(r.db.WithContext(ctx), p, &list, byName)
	if err != nil {
		return nil, 0, wrap("list genres", err)
	}
	return list, total, nil
}

func (r *genreRepository) All(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Scopes(byName).Find(&list).Error; err != nil {
		return nil, wrap("get genres", err)
	}
	return list, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, wrap("get genre", err)
	}
	return &g, nil
}

func (r *genreRepository) Create(ctx context.Context, g *models.Genre) error {
	return wrap("create genre", r.db.WithContext(ctx).Create(g).Error)
}

func (r *genreRepository) Update(ctx context.Context, g *models.Genre) error {
	res := r.db.WithContext(ctx).Model(&models.Genre{}).Where("id = ?", g.ID).Update("name", g.Name)
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return wrap("update genre", res.Error)
}

// Delete cascades to movie_genres through the foreign key.
func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Genre{}, id)
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return wrap("delete genre", res.Error)
}
