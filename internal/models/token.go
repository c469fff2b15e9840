// internal/models/token.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Token is the ownership certificate for one artwork. OwnerIDs is an
// ordered set: several holders may share a token until a sale replaces
// the whole set with the single winning bidder.
type Token struct {
	BaseModel
	ArtworkID uuid.UUID      `json:"artwork_id" gorm:"type:uuid;not null;index"`
	OwnerIDs  pq.StringArray `json:"owner_ids" gorm:"type:text[]"`
	Price     float64        `json:"price" gorm:"type:decimal(12,2);not null"`
	Status    TokenStatus    `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}

// OwnedBy reports whether the artist currently holds the token.
func (t *Token) OwnedBy(artistID uuid.UUID) bool {
	id := artistID.String()
	for _, owner := range t.OwnerIDs {
		if owner == id {
			return true
		}
	}
	return false
}
