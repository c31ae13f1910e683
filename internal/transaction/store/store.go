package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garagemleilao/caixa/internal/transaction"
)

// Store writes records straight into the Postgres table behind the hosted API.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertRecord(ctx context.Context, rec *transaction.Record) error {
	query := `
		INSERT INTO transacoes (carro, valor, tipo, categoria, descricao, status_carro, autor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.Car,
		rec.Amount,
		rec.Type,
		rec.Category,
		rec.Description,
		rec.CarStatus,
		rec.Author,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	return nil
}
