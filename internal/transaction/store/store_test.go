package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagemleilao/caixa/internal/transaction"
	"github.com/garagemleilao/caixa/internal/transaction/store"
)

func newRecord() *transaction.Record {
	return &transaction.Record{
		Car:         "Gol G5",
		Amount:      decimal.RequireFromString("-25000.00"),
		Type:        transaction.TypeExpense,
		Category:    transaction.CategoryAcquisition,
		Description: "Entrou na troca do Civic",
		CarStatus:   transaction.CarStatusInStock,
		Author:      "Marcos",
	}
}

func TestStore_InsertRecord(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	createdAt := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, rec *transaction.Record, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), createdAt)
				mock.ExpectQuery("INSERT INTO transacoes").
					WithArgs("Gol G5", "-25000", "DESPESA", "AQUISICAO", "Entrou na troca do Civic", "EM_ESTOQUE", "Marcos").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, rec *transaction.Record, err error) {
				require.NoError(t, err)
				assert.Equal(t, id, rec.ID)
				assert.Equal(t, createdAt, rec.CreatedAt)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO transacoes").
					WillReturnError(errors.New("relation \"transacoes\" does not exist"))
			},
			assertFunc: func(t *testing.T, rec *transaction.Record, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "inserting record")
				assert.Equal(t, uuid.Nil, rec.ID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.mockSetup(mock)

			rec := newRecord()
			err = store.New(db).InsertRecord(context.Background(), rec)
			tc.assertFunc(t, rec, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = store.New(db).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging database")
	assert.NoError(t, mock.ExpectationsWereMet())
}
