package repository

import (
	"context"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CinemaRepository interface {
	List(ctx context.Context, p Page) ([]models.Cinema, int64, error)
	All(ctx context.Context) ([]models.Cinema, error)
	GetByID(ctx context.Context, id int64) (*models.Cinema, error)
	Create(ctx context.Context, c *models.Cinema) error
	Update(ctx context.Context, c *models.Cinema) error
	Delete(ctx context.Context, id int64) error
}

type cinemaRepository struct {
	db *gorm.DB
}

func NewCinemaRepository(db *gorm.DB) CinemaRepository {
	return &cinemaRepository{db: db}
}

func (r *cinemaRepository) List(ctx context.Context, p Page) ([]models.Cinema, int64, error) {
	var list []models.Cinema
	total, err := findPage(r.db.WithContext(ctx), p, &list, byName)
	if err != nil {
		return nil, 0, wrap("list cinemas", err)
	}
	return list, total, nil
}

func (r *cinemaRepository) All(ctx context.Context) ([]models.Cinema, error) {
	var list []models.Cinema
	if err := r.db.WithContext(ctx).Scopes(byName).Find(&list).Error; err != nil {
		return nil, wrap("get cinemas", err)
	}
	return list, nil
}

func (r *cinemaRepository) GetByID(ctx context.Context, id int64) (*models.Cinema, error) {
	var c models.Cinema
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrap("get cinema", err)
	}
	return &c, nil
}

func (r *cinemaRepository) Create(ctx context.Context, c *models.Cinema) error {
	return wrap("create cinema", r.db.WithContext(ctx).Create(c).Error)
}

func (r *cinemaRepository) Update(ctx context.Context, c *models.Cinema) error {
	res := r.db.WithContext(ctx).Model(&models.Cinema{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":               c.Name,
		"location_latitude":  c.Location.Latitude,
		"location_longitude": c.Location.Longitude,
	})
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return wrap("update cinema", res.Error)
}

func (r *cinemaRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Cinema{}, id)
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return wrap("delete cinema", res.Error)
}
