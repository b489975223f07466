// Package api defines the wire messages of tabsplit.v1.ReceiptService.
//
// Messages are plain structs encoded as JSON; field names follow the
// lowerCamelCase convention of protobuf JSON.
package api

// Item is a priced line item.
type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Participant is a person on a receipt and the items they own.
type Participant struct {
	Id    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Items []*Item `json:"items"`
}

// Receipt is the stored, editable state of a bill.
type Receipt struct {
	Id             string         `json:"id"`
	Title          string         `json:"title"`
	DeclaredTotal  string         `json:"declaredTotal"`
	TaxPercent     string         `json:"taxPercent"`
	ServicePercent string         `json:"servicePercent"`
	Participants   []*Participant `json:"participants"`
	CreatedAt      int64          `json:"createdAt"`
	UpdatedAt      int64          `json:"updatedAt"`
}

// Allocation is one participant's share of the bill.
type Allocation struct {
	ParticipantId string  `json:"participantId,omitempty"`
	Name          string  `json:"name"`
	ItemsTotal    float64 `json:"itemsTotal"`
	Tax           float64 `json:"tax"`
	Service       float64 `json:"service"`
	Total         float64 `json:"total"`
}

// Breakdown is the calculation result. Allocations is empty when the
// subtotal is zero.
type Breakdown struct {
	Subtotal    float64       `json:"subtotal"`
	Base        float64       `json:"base"`
	Allocations []*Allocation `json:"allocations"`
}

// ReceiptSummary is the listing view of a receipt.
type ReceiptSummary struct {
	Id               string `json:"id"`
	Title            string `json:"title"`
	ParticipantCount int32  `json:"participantCount"`
	CreatedAt        int64  `json:"createdAt"`
	UpdatedAt        int64  `json:"updatedAt"`
}

// CalculateRequest carries a whole bill for a one-off calculation.
// Rate fields are free text and coerced the same way stored receipts are.
type CalculateRequest struct {
	DeclaredTotal  string         `json:"declaredTotal"`
	TaxPercent     string         `json:"taxPercent"`
	ServicePercent string         `json:"servicePercent"`
	Participants   []*Participant `json:"participants"`
}

type CalculateResponse struct {
	Breakdown *Breakdown `json:"breakdown"`
}

// CreateReceiptRequest creates an empty receipt. Nil rate fields take the
// defaults (tax "1", service "5", no declared total).
type CreateReceiptRequest struct {
	Title          string  `json:"title"`
	DeclaredTotal  *string `json:"declaredTotal,omitempty"`
	TaxPercent     *string `json:"taxPercent,omitempty"`
	ServicePercent *string `json:"servicePercent,omitempty"`
}

// CreateReceiptResponse returns the new receipt and the token that
// authorizes edits to it.
type CreateReceiptResponse struct {
	Receipt   *Receipt   `json:"receipt"`
	Breakdown *Breakdown `json:"breakdown"`
	EditToken string     `json:"editToken"`
}

type GetReceiptRequest struct {
	ReceiptId string `json:"receiptId" validate:"required,uuid"`
}

type GetReceiptResponse struct {
	Receipt   *Receipt   `json:"receipt"`
	Breakdown *Breakdown `json:"breakdown"`
}

type ListReceiptsRequest struct{}

type ListReceiptsResponse struct {
	Receipts []*ReceiptSummary `json:"receipts"`
}

type DeleteReceiptRequest struct {
	ReceiptId string `json:"receiptId" validate:"required,uuid"`
}

type DeleteReceiptResponse struct{}

type AddParticipantRequest struct {
	ReceiptId string `json:"receiptId" validate:"required,uuid"`
	Name      string `json:"name"`
}

type RemoveParticipantRequest struct {
	ReceiptId     string `json:"receiptId" validate:"required,uuid"`
	ParticipantId string `json:"participantId" validate:"required"`
}

// AddItemRequest adds an item to a participant. Price is free text; it is
// rejected (not an error) when empty, non-numeric or negative.
type AddItemRequest struct {
	ReceiptId     string `json:"receiptId" validate:"required,uuid"`
	ParticipantId string `json:"participantId" validate:"required"`
	Name          string `json:"name"`
	Price         string `json:"price"`
}

type RemoveItemRequest struct {
	ReceiptId     string `json:"receiptId" validate:"required,uuid"`
	ParticipantId string `json:"participantId" validate:"required"`
	Index         int32  `json:"index"`
}

// SetRatesRequest updates rate fields. Nil fields are left unchanged.
type SetRatesRequest struct {
	ReceiptId      string  `json:"receiptId" validate:"required,uuid"`
	DeclaredTotal  *string `json:"declaredTotal,omitempty"`
	TaxPercent     *string `json:"taxPercent,omitempty"`
	ServicePercent *string `json:"servicePercent,omitempty"`
}

// EditResponse is returned by every edit. Accepted is false when the edit
// was ignored because of invalid input; the receipt and breakdown always
// reflect the current state.
type EditResponse struct {
	Accepted      bool       `json:"accepted"`
	ParticipantId string     `json:"participantId,omitempty"`
	Receipt       *Receipt   `json:"receipt"`
	Breakdown     *Breakdown `json:"breakdown"`
}
