// Package migrations holds the versioned database schema. Each numbered file
// registers one goose migration written in Go.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed 0*.go
var sources embed.FS

// Up applies every migration that has not been applied yet.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(sources)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
