// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateReceipt persists a new receipt to the database.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = now
	}
	receipt.UpdatedAt = receipt.CreatedAt
	if receipt.Title == "" {
		receipt.Title = generateTitle(receipt.ParticipantNames())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO receipts (id, title, declared_total, tax_percent, service_percent, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, receipt.Title, receipt.DeclaredTotal, receipt.TaxPercent, receipt.ServicePercent,
		receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	if err := insertParticipants(ctx, tx, receipt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetReceipt retrieves a receipt by ID, including all participants and items.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, declared_total, tax_percent, service_percent, created_at, updated_at
		 FROM receipts WHERE id = ?`,
		receiptID,
	).Scan(&receipt.ID, &receipt.Title, &receipt.DeclaredTotal, &receipt.TaxPercent,
		&receipt.ServicePercent, &receipt.CreatedAt, &receipt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, receiptID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	// Get participants
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM participants WHERE receipt_id = ? ORDER BY position",
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		index[p.ID] = len(receipt.Participants)
		receipt.Participants = append(receipt.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	// Get items for all participants in one pass
	itemRows, err := s.db.QueryContext(ctx,
		`SELECT i.participant_id, i.name, i.price
		 FROM items i JOIN participants p ON p.id = i.participant_id
		 WHERE p.receipt_id = ?
		 ORDER BY p.position, i.position`,
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var participantID string
		var item models.Item
		if err := itemRows.Scan(&participantID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		idx, ok := index[participantID]
		if !ok {
			continue
		}
		receipt.Participants[idx].Items = append(receipt.Participants[idx].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return receipt, nil
}

// UpdateReceipt replaces a receipt's fields, participants and items.
func (s *SQLiteStore) UpdateReceipt(ctx context.Context, receipt *models.Receipt) error {
	receipt.UpdatedAt = time.Now().Unix()
	if receipt.Title == "" {
		receipt.Title = generateTitle(receipt.ParticipantNames())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE receipts
		 SET title = ?, declared_total = ?, tax_percent = ?, service_percent = ?, updated_at = ?
		 WHERE id = ?`,
		receipt.Title, receipt.DeclaredTotal, receipt.TaxPercent, receipt.ServicePercent,
		receipt.UpdatedAt, receipt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, receipt.ID)
	}

	// Participants are replaced wholesale; items go with them via cascade
	if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE receipt_id = ?", receipt.ID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}

	if err := insertParticipants(ctx, tx, receipt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteReceipt removes a receipt; participants and items cascade.
func (s *SQLiteStore) DeleteReceipt(ctx context.Context, receiptID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, receiptID)
	}
	return nil
}

// ListReceipts returns summaries of all receipts, newest first.
func (s *SQLiteStore) ListReceipts(ctx context.Context) ([]storage.ReceiptSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.title, r.created_at, r.updated_at, COUNT(p.id)
		 FROM receipts r LEFT JOIN participants p ON p.receipt_id = r.id
		 GROUP BY r.id
		 ORDER BY r.created_at DESC, r.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var summaries []storage.ReceiptSummary
	for rows.Next() {
		var sum storage.ReceiptSummary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.CreatedAt, &sum.UpdatedAt, &sum.ParticipantCount); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}
	return summaries, nil
}

// insertParticipants writes every participant and item of the receipt.
func insertParticipants(ctx context.Context, tx *sql.Tx, receipt *models.Receipt) error {
	for pos := range receipt.Participants {
		p := &receipt.Participants[pos]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO participants (id, receipt_id, position, name) VALUES (?, ?, ?, ?)",
			p.ID, receipt.ID, pos, p.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}

		for itemPos, item := range p.Items {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO items (participant_id, position, name, price) VALUES (?, ?, ?, ?)",
				p.ID, itemPos, item.Name, item.Price,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item: %w", err)
			}
		}
	}
	return nil
}

// generateTitle creates an auto-generated title from participants.
func generateTitle(participants []string) string {
	if len(participants) == 0 {
		return fmt.Sprintf("Receipt - %s", time.Now().Format("Jan 2, 2006"))
	}
	if len(participants) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(participants, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(participants[:2], ", "),
		len(participants)-2,
	)
}
