package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain"
)

func TestNights(t *testing.T) {
	n, err := Nights("2023-06-01", "2023-06-10")
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	n, err = Nights("2023-06-01", "2023-06-02")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNights_InvalidRange(t *testing.T) {
	_, err := Nights("2023-06-10", "2023-06-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = Nights("2023-06-01", "2023-06-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange, "zero-night stays are rejected")

	_, err = Nights("June 1st", "2023-06-02")
	assert.Error(t, err)
}

func TestTotalAmount(t *testing.T) {
	// 9 nights x 100 x 2.5
	total, err := TotalAmount("2023-06-01", "2023-06-10", domain.CategoryLuxury)
	require.NoError(t, err)
	assert.Equal(t, 2250.0, total)

	total, err = TotalAmount("2023-06-01", "2023-06-03", domain.CategoryPremium)
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)

	total, err = TotalAmount("2023-06-01", "2023-06-03", domain.CategoryStandard)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
}

func TestMultiplier_UnknownCategoryPricesAsStandard(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier(domain.HotelCategory("Boutique")))
}
