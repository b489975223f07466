// Package receipt implements the editing operations on a receipt and the
// bridge from a receipt to the allocation calculator.
//
// Edits never fail. Invalid input (empty names, bad prices, unknown ids) is
// ignored and reported through the boolean return so callers can tell whether
// anything changed.
package receipt

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/tabsplit/internal/calculator"
	"github.com/mmynk/tabsplit/internal/models"
)

const (
	DefaultTaxPercent     = "1"
	DefaultServicePercent = "5"
)

// NewID generates participant identifiers. Replaced in tests.
var NewID = uuid.NewString

// Rates holds optional replacements for the receipt's rate fields.
// A nil field leaves the current value untouched.
type Rates struct {
	TaxPercent     *string
	ServicePercent *string
	DeclaredTotal  *string
}

// New returns an empty receipt with default tax and service percentages.
func New(title string) *models.Receipt {
	return &models.Receipt{
		Title:          strings.TrimSpace(title),
		TaxPercent:     DefaultTaxPercent,
		ServicePercent: DefaultServicePercent,
	}
}

// AddParticipant appends a participant with the given name.
// Returns nil when the trimmed name is empty.
func AddParticipant(r *models.Receipt, name string) *models.Participant {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	r.Participants = append(r.Participants, models.Participant{
		ID:   NewID(),
		Name: name,
	})
	return &r.Participants[len(r.Participants)-1]
}

// RemoveParticipant deletes a participant and all of their items.
func RemoveParticipant(r *models.Receipt, participantID string) bool {
	idx := r.FindParticipant(participantID)
	if idx < 0 {
		return false
	}
	r.Participants = append(r.Participants[:idx], r.Participants[idx+1:]...)
	return true
}

// NewItem builds an item with a trimmed name. ok is false when the name is
// empty or the price is negative, NaN or infinite.
func NewItem(name string, price float64) (item models.Item, ok bool) {
	name = strings.TrimSpace(name)
	if name == "" || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return models.Item{}, false
	}
	return models.Item{Name: name, Price: price}, true
}

// AddItem appends an item to a participant. priceText is parsed leniently;
// the item is rejected if the name is empty or the price is missing,
// negative or infinite.
func AddItem(r *models.Receipt, participantID, name, priceText string) bool {
	price, ok := calculator.ParseNumber(priceText)
	if !ok {
		return false
	}
	item, ok := NewItem(name, price)
	if !ok {
		return false
	}
	idx := r.FindParticipant(participantID)
	if idx < 0 {
		return false
	}
	p := &r.Participants[idx]
	p.Items = append(p.Items, item)
	return true
}

// RemoveItem deletes the item at index from a participant.
func RemoveItem(r *models.Receipt, participantID string, index int) bool {
	idx := r.FindParticipant(participantID)
	if idx < 0 {
		return false
	}
	p := &r.Participants[idx]
	if index < 0 || index >= len(p.Items) {
		return false
	}
	p.Items = append(p.Items[:index], p.Items[index+1:]...)
	return true
}

// SetRates replaces the rate fields that are set in rates.
// Returns false when rates carries no change.
func SetRates(r *models.Receipt, rates Rates) bool {
	changed := false
	if rates.TaxPercent != nil && *rates.TaxPercent != r.TaxPercent {
		r.TaxPercent = *rates.TaxPercent
		changed = true
	}
	if rates.ServicePercent != nil && *rates.ServicePercent != r.ServicePercent {
		r.ServicePercent = *rates.ServicePercent
		changed = true
	}
	if rates.DeclaredTotal != nil && *rates.DeclaredTotal != r.DeclaredTotal {
		r.DeclaredTotal = *rates.DeclaredTotal
		changed = true
	}
	return changed
}
