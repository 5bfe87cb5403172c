package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migracoesFS embed.FS

// Migrar aplica as migrações pendentes no banco do pool. Os arquivos viajam
// embutidos no binário; API e importador sobem o mesmo esquema.
func Migrar(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migracoesFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
