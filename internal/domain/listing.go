package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PropertyType string

const (
	PropertyHouse      PropertyType = "HOUSE"
	PropertyApartment  PropertyType = "APARTMENT"
	PropertyHotel      PropertyType = "HOTEL"
	PropertyVilla      PropertyType = "VILLA"
	PropertyCabin      PropertyType = "CABIN"
	PropertyResort     PropertyType = "RESORT"
	PropertyBeachHouse PropertyType = "BEACH_HOUSE"
	PropertyTreehouse  PropertyType = "TREEHOUSE"
)

var PropertyTypes = []PropertyType{
	PropertyHouse, PropertyApartment, PropertyHotel, PropertyVilla,
	PropertyCabin, PropertyResort, PropertyBeachHouse, PropertyTreehouse,
}

func (p PropertyType) Valid() bool {
	return slices.Contains(PropertyTypes, p)
}

// Well-known amenities surfaced as flags in the listing detail view.
const (
	AmenityWifi            = "wifi"
	AmenityParking         = "parking"
	AmenityKitchen         = "kitchen"
	AmenityAirConditioning = "air conditioning"
	AmenityHeating         = "heating"
	AmenityTV              = "tv"
	AmenityWasher          = "washer"
	AmenityPool            = "pool"
	AmenityPetsAllowed     = "pets allowed"
)

var minBathrooms = decimal.NewFromFloat(0.5)

type Listing struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     decimal.Decimal `json:"bathrooms"`
	MaxGuests     int             `json:"max_guests"`
	PropertyType  PropertyType    `json:"property_type"`
	Amenities     []string        `json:"amenities"`
	IsAvailable   bool            `json:"is_available"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	AverageRating decimal.Decimal `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (l *Listing) HasAmenity(name string) bool {
	for _, a := range l.Amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// CanManage reports whether actor may edit or delete the listing.
func (l *Listing) CanManage(actor Actor) bool {
	return actor.IsStaff || (actor.UserID != "" && actor.UserID == l.OwnerID)
}

func (l *Listing) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return newError(ErrValidation, "title is required")
	}
	if len([]rune(l.Title)) > 200 {
		return newError(ErrValidation, "title is too long")
	}
	if strings.TrimSpace(l.City) == "" || strings.TrimSpace(l.Country) == "" {
		return newError(ErrValidation, "city and country are required")
	}
	if !l.PricePerNight.IsPositive() {
		return ErrInvalidPrice
	}
	if l.MaxGuests < 1 {
		return newError(ErrValidation, "max_guests must be at least 1")
	}
	if l.Bedrooms < 0 {
		return newError(ErrValidation, "bedrooms cannot be negative")
	}
	if l.Bathrooms.LessThan(minBathrooms) {
		return newError(ErrValidation, "bathrooms must be at least 0.5")
	}
	if !l.PropertyType.Valid() {
		return newError(ErrValidation, "unknown property type")
	}
	if (l.Latitude == nil) != (l.Longitude == nil) {
		return newError(ErrValidation, "latitude and longitude must be set together")
	}
	if l.Latitude != nil && (*l.Latitude < -90 || *l.Latitude > 90 || *l.Longitude < -180 || *l.Longitude > 180) {
		return newError(ErrValidation, "coordinates out of range")
	}
	return nil
}

type ListingFilter struct {
	City          string
	Country       string
	PropertyType  PropertyType
	MinGuests     int
	OwnerID       string
	OnlyAvailable bool
}

// ListingDetails is a listing together with its public reviews.
type ListingDetails struct {
	Listing Listing  `json:"listing"`
	Reviews []Review `json:"reviews"`
}

type CreateListingInput struct {
	OwnerID       string
	Title         string
	Description   string
	Address       string
	City          string
	Country       string
	PricePerNight decimal.Decimal
	Bedrooms      int
	Bathrooms     decimal.Decimal
	MaxGuests     int
	PropertyType  PropertyType
	Amenities     []string
	IsAvailable   *bool
	Latitude      *float64
	Longitude     *float64
}

type UpdateListingInput struct {
	Title         *string
	Description   *string
	Address       *string
	City          *string
	Country       *string
	PricePerNight *decimal.Decimal
	Bedrooms      *int
	Bathrooms     *decimal.Decimal
	MaxGuests     *int
	PropertyType  *PropertyType
	Amenities     []string
	IsAvailable   *bool
	Latitude      *float64
	Longitude     *float64
}

// Apply copies the set fields onto l and validates the result. Aggregate
// rating fields are never touched.
func (in UpdateListingInput) Apply(l *Listing) error {
	if in.Title != nil {
		l.Title = *in.Title
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.City != nil {
		l.City = *in.City
	}
	if in.Country != nil {
		l.Country = *in.Country
	}
	if in.PricePerNight != nil {
		l.PricePerNight = *in.PricePerNight
	}
	if in.Bedrooms != nil {
		l.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		l.Bathrooms = *in.Bathrooms
	}
	if in.MaxGuests != nil {
		l.MaxGuests = *in.MaxGuests
	}
	if in.PropertyType != nil {
		l.PropertyType = *in.PropertyType
	}
	if in.Amenities != nil {
		l.Amenities = in.Amenities
	}
	if in.IsAvailable != nil {
		l.IsAvailable = *in.IsAvailable
	}
	if in.Latitude != nil {
		l.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		l.Longitude = in.Longitude
	}
	return l.Validate()
}
