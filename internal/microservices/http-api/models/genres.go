package models

// Genre names are unique by convention only, nothing enforces it.
type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:50;not null;index"`
}

func (Genre) TableName() string {
	return "genres"
}
