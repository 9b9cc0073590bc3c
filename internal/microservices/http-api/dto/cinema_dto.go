package dto

import "moviehub/internal/microservices/http-api/models"

// CinemaCreationDTO for POST and PUT /api/cinemas. Coordinates are pointers so
// that 0 stays a legal latitude/longitude while still being required.
type CinemaCreationDTO struct {
	Name      string   `json:"name" binding:"required,max=75,firstupper"`
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type CinemaDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (d CinemaCreationDTO) ToModel() models.Cinema {
	var c models.Cinema
	d.ApplyTo(&c)
	return c
}

func (d CinemaCreationDTO) ApplyTo(c *models.Cinema) {
	c.Name = d.Name
	c.Location = models.Point{}
	if d.Latitude != nil {
		c.Location.Latitude = *d.Latitude
	}
	if d.Longitude != nil {
		c.Location.Longitude = *d.Longitude
	}
}

func CinemaFromModel(c models.Cinema) CinemaDTO {
	return CinemaDTO{
		ID:        c.ID,
		Name:      c.Name,
		Latitude:  c.Location.Latitude,
		Longitude: c.Location.Longitude,
	}
}

func CinemasFromModels(list []models.Cinema) []CinemaDTO {
	out := make([]CinemaDTO, 0, len(list))
	for _, c := range list {
		out = append(out, CinemaFromModel(c))
	}
	return out
}
