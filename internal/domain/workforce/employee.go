package workforce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinEmployeeAge = 18
	MaxEmployeeAge = 75
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string     `gorm:"not null;column:first_name" json:"first_name"`
	LastName     string     `gorm:"not null;column:last_name" json:"last_name"`
	Email        string     `gorm:"not null;index;column:email" json:"email"`
	Age          int        `gorm:"not null;column:age" json:"age"`
	Salary       float64    `gorm:"not null;column:salary" json:"salary"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index;column:department_id" json:"department_id"`

	// DepartmentName is filled in for list responses; never persisted.
	DepartmentName string `gorm:"-" json:"department_name,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Employee) TableName() string { return "employee" }

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
