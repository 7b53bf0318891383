package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListing() *Listing {
	return &Listing{
		OwnerID:       "owner",
		Title:         "Cabin by the lake",
		City:          "Nakuru",
		Country:       "Kenya",
		PricePerNight: decimal.NewFromInt(120),
		Bedrooms:      2,
		Bathrooms:     decimal.NewFromFloat(1.5),
		MaxGuests:     4,
		PropertyType:  PropertyCabin,
		Amenities:     []string{"WiFi", "parking"},
	}
}

func TestListing_Validate(t *testing.T) {
	require.NoError(t, validListing().Validate())

	tests := []struct {
		name   string
		mutate func(l *Listing)
	}{
		{"empty title", func(l *Listing) { l.Title = " " }},
		{"zero price", func(l *Listing) { l.PricePerNight = decimal.Zero }},
		{"no guests", func(l *Listing) { l.MaxGuests = 0 }},
		{"too few bathrooms", func(l *Listing) { l.Bathrooms = decimal.NewFromFloat(0.25) }},
		{"unknown type", func(l *Listing) { l.PropertyType = "CASTLE" }},
		{"half coordinates", func(l *Listing) { lat := 1.0; l.Latitude = &lat }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(l)
			assert.ErrorIs(t, l.Validate(), ErrValidation)
		})
	}
}

func TestListing_HasAmenity(t *testing.T) {
	l := validListing()

	assert.True(t, l.HasAmenity(AmenityWifi))
	assert.True(t, l.HasAmenity(AmenityParking))
	assert.False(t, l.HasAmenity(AmenityPool))
}

func TestListing_CanManage(t *testing.T) {
	l := validListing()

	assert.True(t, l.CanManage(Actor{UserID: "owner"}))
	assert.True(t, l.CanManage(Actor{UserID: "someone", IsStaff: true}))
	assert.False(t, l.CanManage(Actor{UserID: "someone"}))
	assert.False(t, (&Listing{}).CanManage(Actor{}))
}

func TestUpdateListingInput_Apply_KeepsAggregates(t *testing.T) {
	l := validListing()
	l.AverageRating = decimal.RequireFromString("4.50")
	l.ReviewCount = 2
	price := decimal.NewFromInt(150)

	require.NoError(t, UpdateListingInput{PricePerNight: &price}.Apply(l))

	assert.True(t, l.PricePerNight.Equal(price))
	assert.Equal(t, "4.50", l.AverageRating.StringFixed(2))
	assert.Equal(t, 2, l.ReviewCount)
}
