// internal/models/artwork.go
package models

import (
	"github.com/google/uuid"
)

// Artwork is immutable after creation.
type Artwork struct {
	BaseModel
	ArtistID    uuid.UUID `json:"artist_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"size:512"`
}
