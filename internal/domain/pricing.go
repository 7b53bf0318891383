package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeTotalPrice returns nightlyRate times the number of nights, rounded
// to cents half away from zero.
func ComputeTotalPrice(nightlyRate decimal.Decimal, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return decimal.Zero, ErrDateRangeInvalid
	}
	if !nightlyRate.IsPositive() {
		return decimal.Zero, ErrInvalidPrice
	}
	return nightlyRate.Mul(decimal.NewFromInt(int64(nights))).Round(2), nil
}

type Quote struct {
	ListingID     string          `json:"listing_id"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	Nights        int             `json:"nights"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Available     bool            `json:"available"`
}
