package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Product carries a base price and a discount percentage. FinalPrice is
// always derived from those two, never set directly.
type Product struct {
	ID                 uint64
	CompanyID          uint64
	CategoryID         uint64
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	FinalPrice         decimal.Decimal
	IsAvailable        bool
	CreatedAt          time.Time
	LastUpdated        time.Time
}
