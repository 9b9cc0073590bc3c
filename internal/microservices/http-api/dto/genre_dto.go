package dto

import "moviehub/internal/microservices/http-api/models"

// GenreCreationDTO for POST and PUT /api/genres
type GenreCreationDTO struct {
	Name string `json:"name" binding:"required,max=50,firstupper"`
}

type GenreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d GenreCreationDTO) ToModel() models.Genre {
	return models.Genre{Name: d.Name}
}

func (d GenreCreationDTO) ApplyTo(g *models.Genre) {
	g.Name = d.Name
}

func GenreFromModel(g models.Genre) GenreDTO {
	return GenreDTO{
		ID:   g.ID,
		Name: g.Name,
	}
}

func GenresFromModels(list []models.Genre) []GenreDTO {
	out := make([]GenreDTO, 0, len(list))
	for _, g := range list {
		out = append(out, GenreFromModel(g))
	}
	return out
}
