package repository

import (
	"testing"
	"time"

	"moviehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func movieSQL(t *testing.T, scopes ...func(*gorm.DB) *gorm.DB) string {
	t.Helper()
	return dryRunDB(t).ToSQL(func(tx *gorm.DB) *gorm.DB {
		var list []models.Movie
		return tx.Model(&models.Movie{}).Scopes(scopes...).Find(&list)
	})
}

func TestMovieFilter_EmptyAddsNothing(t *testing.T) {
	assert.Empty(t, MovieFilter{}.Scopes())
	assert.Empty(t, MovieFilter{Title: "   "}.Scopes())
	assert.NotContains(t, movieSQL(t, MovieFilter{}.Scopes()...), "WHERE")
}

func TestMovieFilter_EachFieldAddsOnePredicate(t *testing.T) {
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter MovieFilter
		want   string
	}{
		{"title", MovieFilter{Title: "dune"}, "movies.title ILIKE '%dune%'"},
		{"in theaters", MovieFilter{InTheaters: true}, "movies.in_theaters = true"},
		{"upcoming", MovieFilter{UpcomingReleases: true, Today: today}, "movies.release_date > '2026-10-16'"},
		{"genre", MovieFilter{GenreID: 3}, "mg.genre_id = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scopes := tt.filter.Scopes()
			assert.Len(t, scopes, 1)
			assert.Contains(t, movieSQL(t, scopes...), tt.want)
		})
	}
}

func TestMovieFilter_PredicatesAreANDed(t *testing.T) {
	f := MovieFilter{
		Title:            "alien",
		InTheaters:       true,
		UpcomingReleases: true,
		GenreID:          2,
		Today:            time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	sql := movieSQL(t, f.Scopes()...)

	assert.Len(t, f.Scopes(), 4)
	// raw EXISTS conditions come back wrapped in parentheses
	assert.Contains(t, sql, "movies.title ILIKE '%alien%' AND movies.in_theaters = true AND movies.release_date > '2026-01-02' AND (EXISTS (SELECT 1 FROM movie_genres")
}

func TestTitleContains_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `100\% \_real\_ a\\b`, escapeLike(`100% _real_ a\b`))
	assert.Contains(t, movieSQL(t, TitleContains("50%")), `'%50\%%'`)
}
