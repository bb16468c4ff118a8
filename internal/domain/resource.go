package domain

import "time"

// Resource is a bookable unit: a hotel Room or a restaurant Table.
type Resource interface {
	ResourceID() string
	ResourceNumber() string
	ResourceCapacity() int
	ResourceKind() ResourceType
	Active() bool
}

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeDeluxe RoomType = "DELUXE"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}

type Room struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	Number        string    `json:"number"`
	Type          RoomType  `json:"type"`
	Capacity      int       `json:"capacity"`
	PricePerNight Money     `json:"-"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r *Room) ResourceID() string         { return r.ID }
func (r *Room) ResourceNumber() string     { return r.Number }
func (r *Room) ResourceCapacity() int      { return r.Capacity }
func (r *Room) ResourceKind() ResourceType { return ResourceTypeHotel }
func (r *Room) Active() bool               { return r.IsActive }

type TableLocation string

const (
	TableLocationIndoor  TableLocation = "INDOOR"
	TableLocationOutdoor TableLocation = "OUTDOOR"
	TableLocationTerrace TableLocation = "TERRACE"
	TableLocationBar     TableLocation = "BAR"
)

func (l TableLocation) Valid() bool {
	switch l {
	case TableLocationIndoor, TableLocationOutdoor, TableLocationTerrace, TableLocationBar:
		return true
	}
	return false
}

type Table struct {
	ID         string        `json:"id"`
	BusinessID string        `json:"business_id"`
	Number     string        `json:"number"`
	Capacity   int           `json:"capacity"`
	Location   TableLocation `json:"location"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (t *Table) ResourceID() string         { return t.ID }
func (t *Table) ResourceNumber() string     { return t.Number }
func (t *Table) ResourceCapacity() int      { return t.Capacity }
func (t *Table) ResourceKind() ResourceType { return ResourceTypeRestaurant }
func (t *Table) Active() bool               { return t.IsActive }

type CreateRoomInput struct {
	BusinessID    string
	Number        string
	Type          RoomType
	Capacity      int
	PricePerNight Money
}

type CreateTableInput struct {
	BusinessID string
	Number     string
	Capacity   int
	Location   TableLocation
}

// RoomUpdate and TableUpdate are typed partial updates; nil fields keep
// their current value.
type RoomUpdate struct {
	Type          *RoomType
	Capacity      *int
	PricePerNight *Money
	IsActive      *bool
}

type TableUpdate struct {
	Capacity *int
	Location *TableLocation
	IsActive *bool
}

// RoomFilter narrows a hotel availability query. Matching is conjunctive.
type RoomFilter struct {
	Type        *RoomType
	MinCapacity *int
	MaxPrice    *Money
}

func (f RoomFilter) Matches(r *Room) bool {
	if f.Type != nil && r.Type != *f.Type {
		return false
	}
	if f.MinCapacity != nil && r.Capacity < *f.MinCapacity {
		return false
	}
	if f.MaxPrice != nil {
		over, err := r.PricePerNight.GreaterThan(*f.MaxPrice)
		if err != nil || over {
			return false
		}
	}
	return true
}

// TableFilter narrows a restaurant availability query.
type TableFilter struct {
	Location    *TableLocation
	MinCapacity *int
}

func (f TableFilter) Matches(t *Table) bool {
	if f.Location != nil && t.Location != *f.Location {
		return false
	}
	if f.MinCapacity != nil && t.Capacity < *f.MinCapacity {
		return false
	}
	return true
}

// ResourceFilter carries both filter kinds; the availability engine applies
// whichever matches the business type.
type ResourceFilter struct {
	Room  RoomFilter
	Table TableFilter
}
