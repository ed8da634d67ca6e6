package model

import (
	"time"
)

// FavoriteEventModel is the GORM-specific struct for the 'favorite_events' table.
type FavoriteEventModel struct {
	MessageID  string    `gorm:"type:text;primaryKey"`
	RequestID  string    `gorm:"type:text"`
	ActivityID string    `gorm:"type:text;not null;index:idx_favorite_events_on_activity_id"`
	Name       string    `gorm:"type:text;not null"`
	City       string    `gorm:"type:text;not null"`
	State      string    `gorm:"type:text;not null"`
	Favorite   bool      `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null;index:idx_favorite_events_on_received_at"`
}

// TableName specifies the table name for GORM.
func (FavoriteEventModel) TableName() string {
	return "favorite_events"
}
