// Package postgres provides database initialization and the repository
// layer entry point. Establishes the connection, migrates the schema and
// seeds the role vocabulary.
package postgres

import (
	"fmt"

	"gather_server/internal/config"
	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/model"
	"gather_server/pkg/enum/role"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the database, migrates the schema, seeds the role vocabulary
// and returns the repository aggregate.
func Init() *repository.Repositories {
	conf := config.GetConfig()

	sslMode := conf.PostgresConfig.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		conf.PostgresConfig.Host,
		conf.PostgresConfig.User,
		conf.PostgresConfig.Password,
		conf.PostgresConfig.DatabaseName,
		conf.PostgresConfig.Port,
		sslMode,
	)

	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey, which the repository helpers turn into
	// CodeConflict.
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.RoleEvent{},
		&model.Event{},
		&model.Participant{},
		&model.EventInvitation{},
		&model.Friend{},
		&model.FriendInvitation{},
		&model.ListGift{},
		&model.Gift{},
		&model.ListEvent{},
		&model.BringItem{},
		&model.Taken{},
		&model.Message{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	repos := repository.NewRepositories(db)

	// Seed the role vocabulary once; existing rows are never touched.
	names := make([]string, 0, len(role.All()))
	for _, n := range role.All() {
		names = append(names, string(n))
	}
	if err := repos.Role.Seed(names); err != nil {
		zap.L().Fatal("seed role vocabulary failed", zap.Error(err))
	}

	return repos
}
