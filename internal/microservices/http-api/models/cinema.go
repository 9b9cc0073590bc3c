package models

// Point carries a geographic coordinate. No geometry is computed on it.
type Point struct {
	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
}

type Cinema struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:75;not null;index"`
	Location Point  `json:"location" gorm:"embedded;embeddedPrefix:location_"`
}

func (Cinema) TableName() string {
	return "cinemas"
}
