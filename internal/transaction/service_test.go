package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/garagemleilao/caixa/internal/transaction"
)

func tradeIn() []transaction.Record {
	return []transaction.Record{
		{
			Car:         "Civic 2020",
			Amount:      decimal.RequireFromString("45000.00"),
			Type:        transaction.TypeRevenue,
			Category:    transaction.CategorySale,
			Description: "Venda na troca",
			CarStatus:   transaction.CarStatusSold,
		},
		{
			Car:         "Gol G5",
			Amount:      decimal.RequireFromString("-25000.00"),
			Type:        transaction.TypeExpense,
			Category:    transaction.CategoryAcquisition,
			Description: "Entrou na troca do Civic",
			CarStatus:   transaction.CarStatusInStock,
		},
	}
}

func TestService_Record(t *testing.T) {
	type testCase struct {
		name      string
		records   []transaction.Record
		setupMock func(m *transaction.MockRepository)
		wantSaved int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:    "Success",
			records: tradeIn(),
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					InsertRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *transaction.Record) error {
						rec.ID = uuid.New()
						return nil
					}).
					Times(2)
			},
			wantSaved: 2,
		},
		{
			name:      "Empty",
			records:   nil,
			wantSaved: 0,
		},
		{
			name:    "PartialFailure",
			records: tradeIn(),
			setupMock: func(m *transaction.MockRepository) {
				gomock.InOrder(
					m.EXPECT().InsertRecord(gomock.Any(), gomock.Any()).Return(nil),
					m.EXPECT().InsertRecord(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
				)
			},
			wantSaved: 1,
			wantErr:   true,
		},
		{
			name:    "FirstInsertFails",
			records: tradeIn(),
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().InsertRecord(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantSaved: 0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			saved, err := svc.Record(context.Background(), "Marcos", tt.records)

			assert.Equal(t, tt.wantSaved, saved)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Record_StampsAuthorInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	var got []transaction.Record

	repo.EXPECT().
		InsertRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *transaction.Record) error {
			got = append(got, *rec)
			return nil
		}).
		Times(2)

	records := tradeIn()
	saved, err := transaction.NewService(repo).Record(context.Background(), "Marcos", records)
	require.NoError(t, err)
	require.Equal(t, 2, saved)

	require.Len(t, got, 2)
	assert.Equal(t, "Civic 2020", got[0].Car)
	assert.Equal(t, "Gol G5", got[1].Car)

	for _, rec := range got {
		assert.Equal(t, "Marcos", rec.Author)
	}

	assert.True(t, got[1].Amount.IsNegative())
}

func TestService_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Ping(gomock.Any()).Return(errors.New("unreachable"))

	err := transaction.NewService(repo).Ping(context.Background())
	assert.EqualError(t, err, "unreachable")
}
