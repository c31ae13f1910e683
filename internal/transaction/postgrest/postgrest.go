// Package postgrest inserts records through the hosted table's REST API.
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"github.com/garagemleilao/caixa/internal/transaction"
)

// Store is a transaction.Repository backed by a PostgREST endpoint.
type Store struct {
	client *postgrest.Client
	table  string
}

// New builds a client for baseURL (the project URL, without /rest/v1) authenticated with key.
func New(baseURL, key, table string) (*Store, error) {
	restURL := strings.TrimRight(baseURL, "/") + "/rest/v1"

	client := postgrest.NewClient(restURL, "public", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("creating postgrest client: %w", client.ClientError)
	}

	return &Store{client: client, table: table}, nil
}

type insertRow struct {
	Car         string          `json:"carro"`
	Amount      json.RawMessage `json:"valor"`
	Type        string          `json:"tipo"`
	Category    string          `json:"categoria"`
	Description string          `json:"descricao"`
	CarStatus   string          `json:"status_carro"`
	Author      string          `json:"autor"`
}

type insertedRow struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertRecord performs one insert call. The client has no context support,
// so ctx is only checked before the request goes out.
func (s *Store) InsertRecord(ctx context.Context, rec *transaction.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := insertRow{
		Car:         rec.Car,
		Amount:      json.RawMessage(rec.Amount.String()),
		Type:        string(rec.Type),
		Category:    string(rec.Category),
		Description: rec.Description,
		CarStatus:   string(rec.CarStatus),
		Author:      rec.Author,
	}

	body, _, err := s.client.From(s.table).Insert(row, false, "", "representation", "").Execute()
	if err != nil {
		return fmt.Errorf("inserting record into %s: %w", s.table, err)
	}

	var inserted []insertedRow
	if err := json.Unmarshal(body, &inserted); err != nil {
		return fmt.Errorf("decoding insert response: %w", err)
	}

	if len(inserted) > 0 {
		rec.ID = inserted[0].ID
		rec.CreatedAt = inserted[0].CreatedAt
	}

	return nil
}

// Ping reads a single id to prove the endpoint, key and table are usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := s.client.From(s.table).Select("id", "", false).Limit(1, "").Execute(); err != nil {
		return fmt.Errorf("pinging %s: %w", s.table, err)
	}

	return nil
}
