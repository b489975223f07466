package models

// Receipt represents a bill being split among participants.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string

	// Title is the human-readable name for the receipt.
	// Auto-generated from participant names when left empty.
	Title string

	// DeclaredTotal is the bill total as typed by the user.
	// Empty or unparseable means "use the subtotal".
	DeclaredTotal string

	// TaxPercent is the tax percentage as typed by the user.
	TaxPercent string

	// ServicePercent is the service charge percentage as typed by the user.
	ServicePercent string

	// Participants are the people splitting the bill, in insertion order.
	Participants []Participant

	// CreatedAt is the Unix timestamp when the receipt was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last accepted edit.
	UpdatedAt int64
}

// Participant represents one person on a receipt.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name, trimmed and never empty.
	Name string

	// Items are the participant's line items, in insertion order.
	Items []Item
}

// Item represents a single line item attributed to one participant.
type Item struct {
	// Name is the item description (e.g., "Coffee").
	Name string

	// Price is the non-negative pre-tax price.
	Price float64
}

// Allocation represents one participant's calculated share.
type Allocation struct {
	ParticipantID string
	Name          string

	// Subtotal is the sum of this participant's item prices.
	Subtotal float64

	// Tax is the participant's proportional share of the tax.
	// Calculated as: base × tax% / 100 × (subtotal / bill_subtotal)
	Tax float64

	// Service is the participant's proportional share of the service charge.
	Service float64

	// Total is Subtotal + Tax + Service.
	Total float64
}

// Breakdown is the calculation result for a whole receipt.
type Breakdown struct {
	// Subtotal is the sum of every item price on the receipt.
	Subtotal float64

	// Base is the amount tax and service were charged on
	// (declared total, or Subtotal when none was given).
	Base float64

	// Allocations holds one entry per participant in receipt order.
	// Empty when Subtotal is zero.
	Allocations []Allocation
}

// ParticipantNames returns the names of all participants in order.
func (r *Receipt) ParticipantNames() []string {
	names := make([]string, len(r.Participants))
	for i, p := range r.Participants {
		names[i] = p.Name
	}
	return names
}

// FindParticipant returns the index of the participant with the given ID, or -1.
func (r *Receipt) FindParticipant(id string) int {
	for i, p := range r.Participants {
		if p.ID == id {
			return i
		}
	}
	return -1
}
