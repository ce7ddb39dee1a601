package domain

import (
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain/auth"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain/user"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain/workforce"
)

type User = user.User
type UserToken = auth.UserToken

type Employee = workforce.Employee
type Department = workforce.Department

const (
	MinEmployeeAge       = workforce.MinEmployeeAge
	MaxEmployeeAge       = workforce.MaxEmployeeAge
	MinDepartmentNameLen = workforce.MinDepartmentNameLen
)

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&User{},
		&UserToken{},
		&Department{},
		&Employee{},
	}
}
