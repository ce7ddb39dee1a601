package repos

import (
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos/auth"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos/user"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos/workforce"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

type UserRepo = user.UserRepo
type UserTokenRepo = auth.UserTokenRepo

type EmployeeRepo = workforce.EmployeeRepo
type DepartmentRepo = workforce.DepartmentRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, baseLog)
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return workforce.NewEmployeeRepo(db, baseLog)
}
func NewDepartmentRepo(db *gorm.DB, baseLog *logger.Logger) DepartmentRepo {
	return workforce.NewDepartmentRepo(db, baseLog)
}
