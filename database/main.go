package database

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"runtime"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database/schemas"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"
)

var DB *bun.DB

func InitDB() {
	config := common.Config
	DB = bun.NewDB(sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithAddr(config.DB.IP),
		pgdriver.WithUser(config.DB.User),
		pgdriver.WithPassword(config.DB.Password),
		pgdriver.WithDatabase(config.DB.Name),
		pgdriver.WithTLSConfig(nil),
	)), pgdialect.New())

	if config.Debug {
		DB.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	maxOpenConns := 4 * runtime.GOMAXPROCS(0)
	DB.SetMaxOpenConns(maxOpenConns)
	DB.SetMaxIdleConns(maxOpenConns)

	if err := createSchema(); err != nil {
		slog.Error("Failed to create schema")
		log.Panic(err)
	}
}

// InitTestDB swaps the global connection for an in-memory sqlite database so
// module tests can run against a real store without Postgres.
func InitTestDB() error {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return err
	}
	// a second connection would open a second empty in-memory database
	sqldb.SetMaxOpenConns(1)

	DB = bun.NewDB(sqldb, sqlitedialect.New())
	return createSchema()
}

func createSchema() error {
	DB.RegisterModel((*schemas.DramaParticipant)(nil))

	models := []any{
		(*schemas.Person)(nil),
		(*schemas.Session)(nil),
		(*schemas.Drama)(nil),
		(*schemas.DramaParticipant)(nil),
		(*schemas.DramaSeverityVote)(nil),
	}

	for _, model := range models {
		if _, err := DB.NewCreateTable().IfNotExists().Model(model).Exec(context.Background()); err != nil {
			return err
		}
	}
	return nil
}
