package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, db *gorm.DB, username, passwordHash string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Username: username,
		Password: passwordHash,
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedDepartment(tb testing.TB, ctx context.Context, db *gorm.DB, name string) *types.Department {
	tb.Helper()
	d := &types.Department{
		ID:   uuid.New(),
		Name: name,
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed department: %v", err)
	}
	return d
}

func SeedEmployee(tb testing.TB, ctx context.Context, db *gorm.DB, first, last string, age int, departmentID *uuid.UUID) *types.Employee {
	tb.Helper()
	e := &types.Employee{
		ID:           uuid.New(),
		FirstName:    first,
		LastName:     last,
		Email:        first + "." + last + "@workhub.test",
		Age:          age,
		Salary:       50000,
		DepartmentID: departmentID,
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed employee: %v", err)
	}
	return e
}
