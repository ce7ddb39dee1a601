package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain/user"
	"gorm.io/gorm"
)

// UserToken is one signed-in session. Its ID doubles as the session id.
type UserToken struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	User        *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	AccessToken string     `gorm:"uniqueIndex;not null;column:access_token" json:"-"`
	ExpiresAt   time.Time  `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (UserToken) TableName() string { return "user_token" }

func (t *UserToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *UserToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
