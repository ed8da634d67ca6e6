package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel is the GORM-specific struct for the 'favorite_activities' table.
type ActivityModel struct {
	ID                   uuid.UUID `gorm:"type:text;primaryKey"`
	Name                 string    `gorm:"type:text;not null;index:idx_favorite_activities_on_name"`
	Address              string    `gorm:"type:text;not null"`
	City                 string    `gorm:"type:text;not null"`
	State                string    `gorm:"type:text;not null"`
	Category             string    `gorm:"type:text;not null"`
	Rating               float64   `gorm:"not null;default:0"`
	ReviewCount          int       `gorm:"not null;default:0"`
	Distance             float64   `gorm:"not null;default:0"`
	PhoneNumber          string    `gorm:"type:text;not null"`
	Description          string    `gorm:"type:text;not null"`
	SomethingInteresting string    `gorm:"type:text;not null"`
	Icons                []string  `gorm:"type:text;serializer:json"`
	Latitude             float64   `gorm:"not null;default:0"`
	Longitude            float64   `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "favorite_activities"
}
