package app

import (
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

type Repos struct {
	User       repos.UserRepo
	UserToken  repos.UserTokenRepo
	Employee   repos.EmployeeRepo
	Department repos.DepartmentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		UserToken:  repos.NewUserTokenRepo(db, log),
		Employee:   repos.NewEmployeeRepo(db, log),
		Department: repos.NewDepartmentRepo(db, log),
	}
}
