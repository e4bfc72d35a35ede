package domain

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// itineraryPreview is how many itinerary stops a single-option message lists.
const itineraryPreview = 3

// MessageVariant names a booking message composer.
type MessageVariant string

const (
	VariantSingleOption MessageVariant = "single"
	VariantAllOptions   MessageVariant = "all"
)

// Composer builds the text handed to the messaging deep link.
type Composer interface {
	Compose(trip *Trip, room RoomType) string
}

// Branding holds the agency details that appear in outbound messages.
type Branding struct {
	Agency   string
	Currency string
}

// NewComposer returns the composer for the given variant. Unknown variants fall back to single option.
func NewComposer(variant MessageVariant, b Branding) Composer {
	if variant == VariantAllOptions {
		return AllOptionsComposer{Branding: b}
	}
	return SingleOptionComposer{Branding: b}
}

// SingleOptionComposer quotes only the selected room type.
type SingleOptionComposer struct {
	Branding Branding
}

// Compose implements Composer.
func (c SingleOptionComposer) Compose(trip *Trip, room RoomType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! I'm interested in booking the \"%s\" package.\n\n", c.Branding.Agency, trip.Title)
	b.WriteString("Trip Details:\n")
	fmt.Fprintf(&b, "- Package: %s\n", trip.Title)
	fmt.Fprintf(&b, "- Duration: %s\n", trip.Duration)
	fmt.Fprintf(&b, "- Price: %s per person (%s)\n", c.Branding.money(trip.PriceFor(room)), room)
	fmt.Fprintf(&b, "- Itinerary: %s\n\n", itinerarySummary(trip.Itinerary))
	b.WriteString("Please send me more details about:\n")
	b.WriteString("- Available dates\n")
	b.WriteString("- Inclusions & exclusions\n")
	b.WriteString("- Booking process\n")
	b.WriteString("- Payment options\n\n")
	b.WriteString("Thanks! Looking forward to it.")
	return b.String()
}

// AllOptionsComposer quotes every room type regardless of the selection.
type AllOptionsComposer struct {
	Branding Branding
}

// Compose implements Composer. The room argument is ignored.
func (c AllOptionsComposer) Compose(trip *Trip, _ RoomType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hey! I'm interested in the trip: *%s*\n\n", trip.Title)
	fmt.Fprintf(&b, "Location: %s\n", trip.DisplayLocation())
	fmt.Fprintf(&b, "Duration: %s\n\n", trip.Duration)
	b.WriteString("Sharing Prices:")
	for _, rp := range trip.RoomPrices() {
		fmt.Fprintf(&b, "\n- %s: %s", rp.Room, c.Branding.money(rp.Price))
	}
	return b.String()
}

// CustomizeMessage is the opener for a request to tailor a trip.
func CustomizeMessage(agency string) string {
	return fmt.Sprintf("Hi! I am interested in customizing a trip with %s. Please provide more details.", agency)
}

// DeepLink builds the messaging URL that opens a chat with number prefilled with text.
func DeepLink(number, text string) string {
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// PhoneLink builds a tel: URL for the given number.
func PhoneLink(number string) string {
	return "tel:" + number
}

func itinerarySummary(stops []string) string {
	if len(stops) <= itineraryPreview {
		return strings.Join(stops, ", ")
	}
	return fmt.Sprintf("%s and %d more places",
		strings.Join(stops[:itineraryPreview], ", "), len(stops)-itineraryPreview)
}

var pricePrinter = message.NewPrinter(language.English)

// money formats an amount with thousands grouping, dropping the fraction for whole amounts.
func (b Branding) money(v float64) string {
	if v == math.Trunc(v) {
		return b.Currency + pricePrinter.Sprintf("%d", int64(v))
	}
	return b.Currency + pricePrinter.Sprintf("%.2f", v)
}
