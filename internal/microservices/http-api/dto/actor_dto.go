package dto

import (
	"mime/multipart"
	"time"

	"moviehub/internal/microservices/http-api/models"
)

// ActorCreationDTO is bound from multipart/form-data on POST and PUT
// /api/actors. Photo is optional; on PUT a missing photo keeps the current one.
type ActorCreationDTO struct {
	Name      string                `form:"name" binding:"required,max=200"`
	BirthDate time.Time             `form:"birthDate" binding:"required" time_format:"2006-01-02"`
	Photo     *multipart.FileHeader `form:"photo"`
}

type ActorDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	BirthDate time.Time `json:"birthDate"`
}

// MovieActorDTO is a cast entry as returned inside a movie.
type MovieActorDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// SearchByNameDTO is the body of GET /api/actors/search-by-name when the
// client sends an object instead of a bare JSON string.
type SearchByNameDTO struct {
	Name string `json:"name" form:"name"`
}

// ToModel never maps the upload; the service fills Photo after storage.
func (d ActorCreationDTO) ToModel() models.Actor {
	return models.Actor{
		Name:      d.Name,
		BirthDate: d.BirthDate,
	}
}

func (d ActorCreationDTO) ApplyTo(a *models.Actor) {
	a.Name = d.Name
	a.BirthDate = d.BirthDate
}

func ActorFromModel(a models.Actor) ActorDTO {
	return ActorDTO{
		ID:        a.ID,
		Name:      a.Name,
		Photo:     a.Photo,
		BirthDate: a.BirthDate,
	}
}

func ActorsFromModels(list []models.Actor) []ActorDTO {
	out := make([]ActorDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ActorFromModel(a))
	}
	return out
}

// MovieActorsFromModels flattens cast rows. Ordering is the caller's job.
// CastCandidatesFromModels maps search hits to cast entries with no
// character yet, ready to be appended to a movie's actor list.
func CastCandidatesFromModels(list []models.Actor) []MovieActorDTO {
	out := make([]MovieActorDTO, 0, len(list))
	for _, a := range list {
		out = append(out, MovieActorDTO{ID: a.ID, Name: a.Name, Photo: a.Photo})
	}
	return out
}

func MovieActorsFromModels(rows []models.MovieActor) []MovieActorDTO {
	out := make([]MovieActorDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, MovieActorDTO{
			ID:        r.ActorID,
			Name:      r.Actor.Name,
			Photo:     r.Actor.Photo,
			Character: r.Character,
			Order:     r.BillingOrder,
		})
	}
	return out
}
