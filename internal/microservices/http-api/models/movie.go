package models

import "time"

type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:300;not null;index"`
	Summary     string    `json:"summary" gorm:"type:text"`
	ReleaseDate time.Time `json:"release_date" gorm:"type:date;not null;index"`
	InTheaters  bool      `json:"in_theaters" gorm:"not null;index"`
	Poster      string    `json:"poster" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// associations, rewritten wholesale on every update
	MovieGenres  []MovieGenre  `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	MovieActors  []MovieActor  `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	MovieCinemas []MovieCinema `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
