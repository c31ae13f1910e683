package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type tells whether money came in or went out.
type Type string

const (
	TypeRevenue Type = "RECEITA"
	TypeExpense Type = "DESPESA"
)

// Category is the closed set of garage cost/revenue buckets.
type Category string

const (
	CategoryAcquisition   Category = "AQUISICAO"
	CategoryMechanical    Category = "MECANICA"
	CategoryDocumentation Category = "DOCUMENTACAO"
	CategoryAesthetics    Category = "ESTETICA"
	CategoryParts         Category = "PECAS"
	CategoryLogistics     Category = "LOGISTICA"
	CategorySale          Category = "VENDA"
	CategoryOther         Category = "OUTROS"
)

// Categories lists every Category in the order the prompt presents them.
var Categories = []Category{
	CategoryAcquisition,
	CategoryMechanical,
	CategoryDocumentation,
	CategoryAesthetics,
	CategoryParts,
	CategoryLogistics,
	CategorySale,
	CategoryOther,
}

// CarStatus is the stock state of the vehicle after the transaction.
type CarStatus string

const (
	CarStatusInStock CarStatus = "EM_ESTOQUE"
	CarStatusSold    CarStatus = "VENDIDO"
)

// Record is one financial event tied to one vehicle and one sender.
type Record struct {
	ID          uuid.UUID       `json:"-"`
	Car         string          `json:"carro"`
	Amount      decimal.Decimal `json:"valor"` // positive for revenue, negative for expense
	Type        Type            `json:"tipo"`
	Category    Category        `json:"categoria"`
	Description string          `json:"descricao"`
	CarStatus   CarStatus       `json:"status_carro"`
	Author      string          `json:"autor"`
	CreatedAt   time.Time       `json:"-"`
}
