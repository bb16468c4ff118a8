package domain

import "time"

type BusinessType string

const (
	BusinessTypeHotel      BusinessType = "HOTEL"
	BusinessTypeRestaurant BusinessType = "RESTAURANT"
)

func (t BusinessType) Valid() bool {
	return t == BusinessTypeHotel || t == BusinessTypeRestaurant
}

// ResourceType returns the kind of resource this business pools.
func (t BusinessType) ResourceType() ResourceType {
	if t == BusinessTypeRestaurant {
		return ResourceTypeRestaurant
	}
	return ResourceTypeHotel
}

// Business owns a pool of bookable resources: rooms for hotels, tables for
// restaurants.
type Business struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      BusinessType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CreateBusinessInput struct {
	Name string
	Type BusinessType
}
