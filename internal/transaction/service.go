package transaction

import (
	"context"
	"fmt"

	"github.com/garagemleilao/caixa/internal/logger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	InsertRecord(ctx context.Context, rec *Record) error
	Ping(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stamps every record with author and inserts them one by one, in order.
// It stops at the first failure and reports how many rows made it; those rows
// are not rolled back.
func (s *Service) Record(ctx context.Context, author string, records []Record) (int, error) {
	log := logger.FromContext(ctx)

	for i := range records {
		rec := &records[i]
		rec.Author = author

		if err := s.repo.InsertRecord(ctx, rec); err != nil {
			return i, fmt.Errorf("inserting record %d of %d: %w", i+1, len(records), err)
		}

		log.Info().
			Str("carro", rec.Car).
			Str("valor", rec.Amount.String()).
			Str("tipo", string(rec.Type)).
			Str("categoria", string(rec.Category)).
			Str("autor", rec.Author).
			Msg("record saved")
	}

	return len(records), nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
