package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Company struct {
	ID          uint64
	Name        string
	Description string
	Sector      string
	Address     string
	Phone       string
	DeliveryFee decimal.Decimal
	CreatedAt   time.Time
}
