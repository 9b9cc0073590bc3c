package models

// MovieGenre links a movie to one of its genres.
type MovieGenre struct {
	MovieID int64 `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`
	GenreID int64 `json:"genre_id" gorm:"primaryKey;autoIncrement:false;index"`
	Genre   Genre `json:"-" gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE;"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}

// MovieActor is one cast entry. BillingOrder is the zero-based position of
// the actor in the list submitted on the last write.
type MovieActor struct {
	MovieID      int64  `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`
	ActorID      int64  `json:"actor_id" gorm:"primaryKey;autoIncrement:false;index"`
	Character    string `json:"character" gorm:"size:100"`
	BillingOrder int    `json:"order" gorm:"not null"`
	Actor        Actor  `json:"-" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE;"`
}

func (MovieActor) TableName() string {
	return "movie_actors"
}

// MovieCinema marks a movie as showing in a cinema.
type MovieCinema struct {
	MovieID  int64  `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`
	CinemaID int64  `json:"cinema_id" gorm:"primaryKey;autoIncrement:false;index"`
	Cinema   Cinema `json:"-" gorm:"foreignKey:CinemaID;constraint:OnDelete:CASCADE;"`
}

func (MovieCinema) TableName() string {
	return "movie_cinemas"
}
