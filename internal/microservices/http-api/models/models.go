package models

// All returns every model that AutoMigrate must know about, parents first.
func All() []any {
	return []any{
		&Genre{},
		&Actor{},
		&Cinema{},
		&Movie{},
		&MovieGenre{},
		&MovieActor{},
		&MovieCinema{},
	}
}
