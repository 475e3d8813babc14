package bankprofile

import (
	"time"

	"github.com/google/uuid"
)

type BankProfile struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bank_profiles_staff"`
	BankName          string    `gorm:"type:varchar(120);not null"`
	Branch            string    `gorm:"type:varchar(120);not null"`
	AccountNumber     string    `gorm:"type:varchar(40);not null"`
	AccountHolderName string    `gorm:"type:varchar(160);not null"`

	// Opaque reference owned by file storage; never resolved here.
	PassbookImageRef *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BankProfile) TableName() string {
	return "bank_profiles"
}
