package db

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq" // driver Postgres
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Open abre a conexão com o Postgres hospedado e valida com Ping.
// A instância devolvida é injetada nos repositórios; o ciclo de vida
// (defer Close) pertence ao main.
func Open(connStr string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return conn, nil
}

// Migrate executa as migrações embarcadas via goose.
func Migrate(conn *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}
