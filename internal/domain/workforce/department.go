package workforce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinDepartmentNameLen is counted after trimming.
const MinDepartmentNameLen = 3

// Department groups employees. Employees point at it through DepartmentID; the
// department itself never embeds them.
type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null;column:name" json:"name"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Department) TableName() string { return "department" }

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
