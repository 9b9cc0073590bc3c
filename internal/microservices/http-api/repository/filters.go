package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// MovieFilter narrows a movie query. Zero fields add no predicate; the rest
// are ANDed together.
type MovieFilter struct {
	Title            string
	InTheaters       bool
	UpcomingReleases bool
	GenreID          int64

	// Today is the reference day for UpcomingReleases.
	Today time.Time
}

// Scopes returns one scope per present field.
func (f MovieFilter) Scopes() []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB
	if t := strings.TrimSpace(f.Title); t != "" {
		scopes = append(scopes, TitleContains(t))
	}
	if f.InTheaters {
		scopes = append(scopes, InTheatersOnly)
	}
	if f.UpcomingReleases {
		scopes = append(scopes, ReleasedAfter(f.Today))
	}
	if f.GenreID > 0 {
		scopes = append(scopes, HasGenre(f.GenreID))
	}
	return scopes
}

// TitleContains matches a case-insensitive substring of the title. LIKE
// wildcards in the input are matched literally.
func TitleContains(title string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(title) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("movies.title ILIKE ?", pattern)
	}
}

func InTheatersOnly(db *gorm.DB) *gorm.DB {
	return db.Where("movies.in_theaters = ?", true)
}

// ReleasedAfter keeps movies whose release date is strictly after day.
func ReleasedAfter(day time.Time) func(*gorm.DB) *gorm.DB {
	d := day.Format(dateLayout)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("movies.release_date > ?", d)
	}
}

func HasGenre(genreID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = movies.id AND mg.genre_id = ?)", genreID)
	}
}

// NameContains is the actor lookup predicate.
func NameContains(name string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(name) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("name ILIKE ?", pattern)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
