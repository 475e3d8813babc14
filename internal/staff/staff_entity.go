package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff is owned by the identity service; this module only reads it.
type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Staff) TableName() string {
	return "staff"
}
