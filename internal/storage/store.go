// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tabsplit/internal/models"
)

// ErrNotFound is returned when a receipt does not exist.
var ErrNotFound = errors.New("receipt not found")

// Store defines the interface for receipt storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateReceipt persists a new receipt.
	// The receipt.ID, CreatedAt and Title fields are populated when empty.
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt with its participants and items.
	// Returns an error wrapping ErrNotFound if the receipt does not exist.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// UpdateReceipt replaces the stored state of an existing receipt.
	UpdateReceipt(ctx context.Context, receipt *models.Receipt) error

	// DeleteReceipt removes a receipt and everything it owns.
	DeleteReceipt(ctx context.Context, receiptID string) error

	// ListReceipts returns all receipts, newest first, without participants.
	ListReceipts(ctx context.Context) ([]ReceiptSummary, error)

	// Close releases any resources held by the store.
	Close() error
}

// ReceiptSummary is the listing view of a receipt.
type ReceiptSummary struct {
	ID               string
	Title            string
	ParticipantCount int
	CreatedAt        int64
	UpdatedAt        int64
}
