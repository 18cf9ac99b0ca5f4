package models

import (
	"math"
	"strings"
	"time"
)

type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	AmenityIDs  []string  `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p Place) EntityID() string { return p.ID }

// HasAmenity reports whether the amenity is linked to the place.
func (p Place) HasAmenity(id string) bool {
	for _, a := range p.AmenityIDs {
		if a == id {
			return true
		}
	}
	return false
}

// PlaceDetails is a place expanded with its owner, amenities and rating.
type PlaceDetails struct {
	Place
	Owner      *UserSummary     `json:"owner,omitempty"`
	Amenities  []AmenitySummary `json:"amenities"`
	Rating     RatingSummary    `json:"rating"`
	DistanceKm *float64         `json:"distance_km,omitempty"`
}

// PlaceFilter narrows a place listing. Latitude and Longitude go together;
// RadiusKm needs both.
type PlaceFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

func (f PlaceFilter) HasOrigin() bool {
	return f.Latitude != nil && f.Longitude != nil
}

func (f PlaceFilter) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return invalid("min_price", "must be a non-negative number")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return invalid("max_price", "must be a non-negative number")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return invalid("min_price", "must not exceed max_price")
	}
	if (f.Latitude == nil) != (f.Longitude == nil) {
		return invalid("latitude", "latitude and longitude must be given together")
	}
	if err := validateCoordinates(f.Latitude, f.Longitude); err != nil {
		return err
	}
	if f.RadiusKm != nil {
		if !f.HasOrigin() {
			return invalid("radius_km", "needs latitude and longitude")
		}
		if math.IsNaN(*f.RadiusKm) || *f.RadiusKm <= 0 {
			return invalid("radius_km", "must be positive")
		}
	}
	return nil
}

type CreatePlaceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

func (r *CreatePlaceRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Amenities = uniqueIDs(r.Amenities)
}

func (r CreatePlaceRequest) Validate() error {
	if r.Title == "" {
		return invalid("title", "is required")
	}
	if err := validatePlaceFields(r.Title, r.Description, r.Price); err != nil {
		return err
	}
	return validateCoordinates(r.Latitude, r.Longitude)
}

type UpdatePlaceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Amenities   *[]string `json:"amenities"`
}

func (r *UpdatePlaceRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
	if r.Amenities != nil {
		ids := uniqueIDs(*r.Amenities)
		r.Amenities = &ids
	}
}

func (r UpdatePlaceRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return invalid("title", "must not be empty")
	}
	title, description, price := "", "", 0.0
	if r.Title != nil {
		title = *r.Title
	}
	if r.Description != nil {
		description = *r.Description
	}
	if r.Price != nil {
		price = *r.Price
	}
	if err := validatePlaceFields(title, description, price); err != nil {
		return err
	}
	return validateCoordinates(r.Latitude, r.Longitude)
}

// Apply copies the supplied fields onto p.
func (r UpdatePlaceRequest) Apply(p *Place) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Latitude != nil {
		p.Latitude = r.Latitude
	}
	if r.Longitude != nil {
		p.Longitude = r.Longitude
	}
	if r.Amenities != nil {
		p.AmenityIDs = append([]string(nil), (*r.Amenities)...)
	}
}

func validatePlaceFields(title, description string, price float64) error {
	if len(title) > 100 {
		return invalid("title", "must be at most 100 characters")
	}
	if len(description) > 1024 {
		return invalid("description", "must be at most 1024 characters")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return invalid("price", "must be a non-negative number")
	}
	return nil
}

func validateCoordinates(lat, lon *float64) error {
	if lat != nil && (math.IsNaN(*lat) || *lat < -90 || *lat > 90) {
		return invalid("latitude", "must be between -90 and 90")
	}
	if lon != nil && (math.IsNaN(*lon) || *lon < -180 || *lon > 180) {
		return invalid("longitude", "must be between -180 and 180")
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
