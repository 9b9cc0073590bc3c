package models

import "time"

type Actor struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:200;not null;index"`
	Photo     string    `json:"photo" gorm:"size:500"`
	BirthDate time.Time `json:"birth_date" gorm:"type:date;not null"`
}

func (Actor) TableName() string {
	return "actors"
}
