package models

import (
	"strings"
	"time"
)

type Amenity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Amenity) EntityID() string { return a.ID }

func (a Amenity) Summary() AmenitySummary {
	return AmenitySummary{ID: a.ID, Name: a.Name}
}

type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AmenityRequest struct {
	Name string `json:"name"`
}

func (r *AmenityRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r AmenityRequest) Validate() error {
	if r.Name == "" {
		return invalid("name", "is required")
	}
	if len(r.Name) > 50 {
		return invalid("name", "must be at most 50 characters")
	}
	return nil
}
