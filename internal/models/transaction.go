// internal/models/transaction.go
package models

import (
	"github.com/google/uuid"
)

// Transaction is the append-only sale record written exactly once per
// finalized auction. Never updated after creation.
type Transaction struct {
	BaseModel
	TokenID  uuid.UUID `json:"token_id" gorm:"type:uuid;not null;index"`
	BuyerID  uuid.UUID `json:"buyer_id" gorm:"type:uuid;not null;index"`
	SellerID uuid.UUID `json:"seller_id" gorm:"type:uuid;not null;index"`
	Price    float64   `json:"price" gorm:"type:decimal(12,2);not null"`
}
