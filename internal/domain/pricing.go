package domain

import (
	"fmt"
	"strings"
)

// RoomType represents the occupancy a trip is priced for.
type RoomType int

const (
	RoomQuad RoomType = iota
	RoomTriple
	RoomTwin
)

// Fallback offsets applied to the Quad price when no override is set.
const (
	TripleOffset = 500.0
	TwinOffset   = 1000.0
)

// RoomTypes lists every room type in display order.
var RoomTypes = []RoomType{RoomQuad, RoomTriple, RoomTwin}

// String returns the display name of the room type.
func (r RoomType) String() string {
	switch r {
	case RoomQuad:
		return "Quad"
	case RoomTriple:
		return "Triple"
	case RoomTwin:
		return "Twin"
	default:
		return fmt.Sprintf("RoomType(%d)", int(r))
	}
}

// ParseRoomType maps a room name to a RoomType. The empty string means Quad.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quad":
		return RoomQuad, nil
	case "triple":
		return RoomTriple, nil
	case "twin":
		return RoomTwin, nil
	default:
		return RoomQuad, fmt.Errorf("%w: %q", ErrUnknownRoomType, s)
	}
}

// RoomPrice pairs a room type with its resolved price.
type RoomPrice struct {
	Room  RoomType
	Price float64
}

// PriceFor resolves the per-person price of the trip for the given room type.
func (t *Trip) PriceFor(room RoomType) float64 {
	switch room {
	case RoomTriple:
		if t.TriplePrice != nil {
			return *t.TriplePrice
		}
		return t.Price + TripleOffset
	case RoomTwin:
		if t.TwinPrice != nil {
			return *t.TwinPrice
		}
		return t.Price + TwinOffset
	case RoomQuad:
		return t.Price
	default:
		panic(fmt.Sprintf("domain: price requested for %v", room))
	}
}

// RoomPrices returns the price of every room type in Quad, Triple, Twin order.
func (t *Trip) RoomPrices() []RoomPrice {
	prices := make([]RoomPrice, 0, len(RoomTypes))
	for _, r := range RoomTypes {
		prices = append(prices, RoomPrice{Room: r, Price: t.PriceFor(r)})
	}
	return prices
}
