package calculator

import "math"

// Item represents a single priced item owned by one participant.
type Item struct {
	Name  string
	Price float64
}

// Participant represents one person splitting the bill and the items they ordered.
type Participant struct {
	ID    string
	Name  string
	Items []Item
}

// Input holds everything the allocation depends on.
type Input struct {
	// DeclaredTotal overrides the subtotal as the base for tax and service.
	// Zero or non-finite means "use the subtotal".
	DeclaredTotal  float64
	TaxPercent     float64
	ServicePercent float64
	Participants   []Participant
}

// Allocation is one participant's share of the bill.
type Allocation struct {
	ParticipantID string
	Name          string
	Subtotal      float64 // Sum of this participant's item prices
	Tax           float64
	Service       float64
	Total         float64 // Subtotal + Tax + Service
}

// Subtotal returns the sum of all item prices across all participants.
func Subtotal(participants []Participant) float64 {
	var subtotal float64
	for _, p := range participants {
		subtotal += personSubtotal(p.Items)
	}
	return subtotal
}

// Base returns the amount tax and service are charged on: the declared total
// when one was given, otherwise the subtotal.
func Base(declaredTotal, subtotal float64) float64 {
	if declaredTotal == 0 || math.IsNaN(declaredTotal) || math.IsInf(declaredTotal, 0) {
		return subtotal
	}
	return declaredTotal
}

// Allocate distributes tax and service charges across participants in
// proportion to their share of the subtotal.
//
// Algorithm:
//   - subtotal = sum of every item price
//   - ratio = person_subtotal / subtotal
//   - tax = base × (tax% / 100) × ratio, service likewise
//   - total = person_subtotal + tax + service
//
// A zero subtotal yields no allocations. Results follow participant order and
// are not rounded.
func Allocate(in Input) []Allocation {
	subtotal := Subtotal(in.Participants)
	if subtotal == 0 {
		return nil
	}

	base := Base(in.DeclaredTotal, subtotal)
	taxPool := base * (in.TaxPercent / 100)
	servicePool := base * (in.ServicePercent / 100)

	allocations := make([]Allocation, 0, len(in.Participants))
	for _, p := range in.Participants {
		own := personSubtotal(p.Items)
		ratio := own / subtotal
		tax := taxPool * ratio
		service := servicePool * ratio

		allocations = append(allocations, Allocation{
			ParticipantID: p.ID,
			Name:          p.Name,
			Subtotal:      own,
			Tax:           tax,
			Service:       service,
			Total:         own + tax + service,
		})
	}
	return allocations
}

// personSubtotal sums item prices, counting non-numeric prices as zero.
func personSubtotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += CoercePrice(it.Price)
	}
	return sum
}
