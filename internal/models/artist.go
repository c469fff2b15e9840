// internal/models/artist.go
package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Artist struct {
	BaseModel
	// OwnerID is the identity that registered the profile. Immutable
	// once set.
	OwnerID       uuid.UUID `json:"owner_id" gorm:"type:uuid;not null"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	WalletAddress string    `json:"wallet_address" gorm:"size:64;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"`
}

func (a *Artist) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

func (a *Artist) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}
