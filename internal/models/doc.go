// Package models defines the core domain models for tabsplit.
//
// # Models
//
//   - Receipt: An editable bill with tax/service settings and participants
//   - Participant: A person splitting the bill; owns their items
//   - Item: A named, priced line item attributed to one participant
//   - Allocation: Calculated share for one participant
//   - Breakdown: The full calculation result for a receipt
//
// # Design Principles
//
// 1. **Raw rate text**: Tax, service and declared total keep the text the user
// typed; they are coerced to numbers only when a breakdown is calculated.
// 2. **Derived results**: Allocations are never stored; they are recomputed
// from the receipt on every read or edit.
// 3. **Ownership by value**: Participants own their items by value, so removing
// a participant removes their items with it.
package models
