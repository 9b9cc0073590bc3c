package repository

import (
	"context"
	"time"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Filter(ctx context.Context, f MovieFilter, p Page) ([]models.Movie, int64, error)
	ListUpcoming(ctx context.Context, today time.Time, limit int) ([]models.Movie, error)
	ListInTheaters(ctx context.Context, limit int) ([]models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	// Delete removes the movie and its join rows and returns the removed row.
	Delete(ctx context.Context, id int64) (*models.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// withDetails preloads every association, the cast in billing order.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("MovieGenres.Genre").
		Preload("MovieCinemas.Cinema").
		Preload("MovieActors", func(db *gorm.DB) *gorm.DB {
			return db.Order("movie_actors.billing_order asc")
		}).
		Preload("MovieActors.Actor")
}

func byReleaseDate(db *gorm.DB) *gorm.DB {
	return db.Order("movies.release_date asc").Order("movies.id asc")
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).Scopes(withDetails).First(&m, id).Error; err != nil {
		return nil, wrap("get movie", err)
	}
	return &m, nil
}

func (r *movieRepository) Filter(ctx context.Context, f MovieFilter, p Page) ([]models.Movie, int64, error) {
	var list []models.Movie
	q := r.db.WithContext(ctx).Model(&models.Movie{}).Scopes(f.Scopes()...)
	total, err := findPage(q, p, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order("movies.title asc").Order("movies.id asc")
	})
	if err != nil {
		return nil, 0, wrap("filter movies", err)
	}
	return list, total, nil
}

func (r *movieRepository) ListUpcoming(ctx context.Context, today time.Time, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Scopes(ReleasedAfter(today), byReleaseDate).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, wrap("list upcoming movies", err)
	}
	return list, nil
}

func (r *movieRepository) ListInTheaters(ctx context.Context, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Scopes(InTheatersOnly, byReleaseDate).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, wrap("list movies in theaters", err)
	}
	return list, nil
}

// Create inserts the movie row, then its join rows, in one transaction.
func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		return insertJoins(tx, m)
	})
	return wrap("create movie", err)
}

// Update overwrites the scalars and replaces every join row.
func (r *movieRepository) Update(ctx context.Context, m *models.Movie) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Movie{}).Where("id = ?", m.ID).Updates(map[string]any{
			"title":        m.Title,
			"summary":      m.Summary,
			"release_date": m.ReleaseDate,
			"in_theaters":  m.InTheaters,
			"poster":       m.Poster,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		for _, join := range []any{&models.MovieGenre{}, &models.MovieActor{}, &models.MovieCinema{}} {
			if err := tx.Where("movie_id = ?", m.ID).Delete(join).Error; err != nil {
				return err
			}
		}
		return insertJoins(tx, m)
	})
	return wrap("update movie", err)
}

func (r *movieRepository) Delete(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&m)
	if res.Error != nil {
		return nil, wrap("delete movie", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, wrap("delete movie", gorm.ErrRecordNotFound)
	}
	return &m, nil
}

func insertJoins(tx *gorm.DB, m *models.Movie) error {
	for i := range m.MovieGenres {
		m.MovieGenres[i].MovieID = m.ID
	}
	for i := range m.MovieActors {
		m.MovieActors[i].MovieID = m.ID
	}
	for i := range m.MovieCinemas {
		m.MovieCinemas[i].MovieID = m.ID
	}

	if len(m.MovieGenres) > 0 {
		if err := tx.Omit(clause.Associations).Create(&m.MovieGenres).Error; err != nil {
			return err
		}
	}
	if len(m.MovieActors) > 0 {
		if err := tx.Omit(clause.Associations).Create(&m.MovieActors).Error; err != nil {
			return err
		}
	}
	if len(m.MovieCinemas) > 0 {
		if err := tx.Omit(clause.Associations).Create(&m.MovieCinemas).Error; err != nil {
			return err
		}
	}
	return nil
}
