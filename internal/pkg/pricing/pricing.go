// Package pricing computes booking totals: nights times the base rate
// times the hotel category multiplier.
package pricing

import (
	"errors"
	"math"
	"time"

	"hotelbooking/internal/domain"
)

const (
	DateLayout       = "2006-01-02"
	BaseRatePerNight = 100.0
)

var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// Multiplier returns the category multiplier; unknown categories price
// as Standard.
func Multiplier(category domain.HotelCategory) float64 {
	switch category {
	case domain.CategoryLuxury:
		return 2.5
	case domain.CategoryPremium:
		return 1.5
	default:
		return 1.0
	}
}

// Nights counts whole nights between two ISO day strings.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0, err
	}
	if !out.After(in) {
		return 0, ErrInvalidDateRange
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// TotalAmount prices a stay, rounded to cents.
func TotalAmount(checkIn, checkOut string, category domain.HotelCategory) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	total := float64(nights) * BaseRatePerNight * Multiplier(category)
	return math.Round(total*100) / 100, nil
}
