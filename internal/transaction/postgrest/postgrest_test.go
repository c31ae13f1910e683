package postgrest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagemleilao/caixa/internal/transaction"
	"github.com/garagemleilao/caixa/internal/transaction/postgrest"
)

func newRecord() *transaction.Record {
	return &transaction.Record{
		Car:         "Civic 2020",
		Amount:      decimal.RequireFromString("45000.50"),
		Type:        transaction.TypeRevenue,
		Category:    transaction.CategorySale,
		Description: "Venda na troca",
		CarStatus:   transaction.CarStatusSold,
		Author:      "Marcos",
	}
}

func TestStore_InsertRecord(t *testing.T) {
	id := uuid.New()

	var (
		gotPath   string
		gotMethod string
		gotKey    string
		gotAuth   string
		gotBody   map[string]any
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")

		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"` + id.String() + `","created_at":"2025-03-10T14:00:00Z"}]`))
	}))
	defer srv.Close()

	s, err := postgrest.New(srv.URL+"/", "secret", "transacoes")
	require.NoError(t, err)

	rec := newRecord()
	require.NoError(t, s.InsertRecord(context.Background(), rec))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/rest/v1/transacoes", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "Bearer secret", gotAuth)

	assert.Equal(t, "Civic 2020", gotBody["carro"])
	assert.Equal(t, 45000.5, gotBody["valor"])
	assert.Equal(t, "RECEITA", gotBody["tipo"])
	assert.Equal(t, "VENDA", gotBody["categoria"])
	assert.Equal(t, "VENDIDO", gotBody["status_carro"])
	assert.Equal(t, "Marcos", gotBody["autor"])

	assert.Equal(t, id, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestStore_InsertRecord_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"PGRST204","message":"Could not find the 'carro' column","details":null,"hint":null}`))
	}))
	defer srv.Close()

	s, err := postgrest.New(srv.URL, "secret", "transacoes")
	require.NoError(t, err)

	err = s.InsertRecord(context.Background(), newRecord())
	assert.Error(t, err)
}

func TestStore_InsertRecord_CanceledContext(t *testing.T) {
	called := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s, err := postgrest.New(srv.URL, "secret", "transacoes")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.InsertRecord(ctx, newRecord())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
