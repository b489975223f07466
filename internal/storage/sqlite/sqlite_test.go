package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func countRows(t *testing.T, store *SQLiteStore, table string) int {
	t.Helper()
	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateReceipt generates ID and title", func(t *testing.T) {
		receipt := &models.Receipt{TaxPercent: "1", ServicePercent: "5"}

		if err := store.CreateReceipt(ctx, receipt); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		if receipt.ID == "" {
			t.Error("Expected receipt ID to be generated")
		}
		if !strings.HasPrefix(receipt.Title, "Receipt - ") {
			t.Errorf("Expected generated title, got %q", receipt.Title)
		}
		if receipt.CreatedAt == 0 || receipt.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("GetReceipt retrieves complete receipt in order", func(t *testing.T) {
		original := &models.Receipt{
			Title:          "Test Dinner",
			DeclaredTotal:  "55",
			TaxPercent:     "8.5",
			ServicePercent: "10",
			Participants: []models.Participant{
				{Name: "Charlie", Items: []models.Item{{Name: "Steak", Price: 30}, {Name: "Wine", Price: 12.5}}},
				{Name: "Diana", Items: []models.Item{{Name: "Salad", Price: 20}}},
				{Name: "Eve"},
			},
		}

		if err := store.CreateReceipt(ctx, original); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		retrieved, err := store.GetReceipt(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetReceipt failed: %v", err)
		}

		if retrieved.Title != "Test Dinner" {
			t.Errorf("Title mismatch: got %s", retrieved.Title)
		}
		if retrieved.DeclaredTotal != "55" || retrieved.TaxPercent != "8.5" || retrieved.ServicePercent != "10" {
			t.Errorf("Rate fields mismatch: %+v", retrieved)
		}
		if len(retrieved.Participants) != 3 {
			t.Fatalf("Participants count mismatch: got %d, want 3", len(retrieved.Participants))
		}
		for i, want := range []string{"Charlie", "Diana", "Eve"} {
			if got := retrieved.Participants[i].Name; got != want {
				t.Errorf("Participant %d: got %s, want %s", i, got, want)
			}
			if retrieved.Participants[i].ID != original.Participants[i].ID {
				t.Errorf("Participant %d ID mismatch", i)
			}
		}
		charlie := retrieved.Participants[0]
		if len(charlie.Items) != 2 || charlie.Items[0].Name != "Steak" || charlie.Items[1].Price != 12.5 {
			t.Errorf("Charlie items mismatch: %+v", charlie.Items)
		}
		if len(retrieved.Participants[2].Items) != 0 {
			t.Errorf("Eve should have no items, got %d", len(retrieved.Participants[2].Items))
		}
	})

	t.Run("GetReceipt returns ErrNotFound for nonexistent receipt", func(t *testing.T) {
		_, err := store.GetReceipt(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateReceipt replaces participants and items", func(t *testing.T) {
		receipt := &models.Receipt{
			Title: "Lunch",
			Participants: []models.Participant{
				{Name: "Alice", Items: []models.Item{{Name: "Soup", Price: 10}}},
				{Name: "Bob", Items: []models.Item{{Name: "Pie", Price: 8}}},
			},
		}
		if err := store.CreateReceipt(ctx, receipt); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		receipt.Participants = receipt.Participants[:1]
		receipt.Participants[0].Items = append(receipt.Participants[0].Items, models.Item{Name: "Bread", Price: 2})
		receipt.TaxPercent = "7"
		if err := store.UpdateReceipt(ctx, receipt); err != nil {
			t.Fatalf("UpdateReceipt failed: %v", err)
		}

		got, err := store.GetReceipt(ctx, receipt.ID)
		if err != nil {
			t.Fatalf("GetReceipt failed: %v", err)
		}
		if got.TaxPercent != "7" {
			t.Errorf("TaxPercent: got %q, want 7", got.TaxPercent)
		}
		if len(got.Participants) != 1 || len(got.Participants[0].Items) != 2 {
			t.Fatalf("Unexpected participants after update: %+v", got.Participants)
		}
		if got.Participants[0].Items[1].Name != "Bread" {
			t.Errorf("Expected Bread second, got %s", got.Participants[0].Items[1].Name)
		}
	})

	t.Run("UpdateReceipt returns ErrNotFound for unknown receipt", func(t *testing.T) {
		err := store.UpdateReceipt(ctx, &models.Receipt{ID: "missing", Title: "x"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteReceipt_CascadesItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	receipt := &models.Receipt{
		Participants: []models.Participant{
			{Name: "Alice", Items: []models.Item{{Name: "Soup", Price: 10}, {Name: "Tea", Price: 3}}},
		},
	}
	if err := store.CreateReceipt(ctx, receipt); err != nil {
		t.Fatalf("CreateReceipt failed: %v", err)
	}
	if n := countRows(t, store, "items"); n != 2 {
		t.Fatalf("Expected 2 items, got %d", n)
	}

	if err := store.DeleteReceipt(ctx, receipt.ID); err != nil {
		t.Fatalf("DeleteReceipt failed: %v", err)
	}
	if n := countRows(t, store, "participants"); n != 0 {
		t.Errorf("Expected no participants left, got %d", n)
	}
	if n := countRows(t, store, "items"); n != 0 {
		t.Errorf("Expected no items left, got %d", n)
	}

	if err := store.DeleteReceipt(ctx, receipt.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListReceipts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &models.Receipt{Title: "One", CreatedAt: 100, Participants: []models.Participant{{Name: "A"}, {Name: "B"}}}
	second := &models.Receipt{Title: "Two", CreatedAt: 200}
	for _, r := range []*models.Receipt{first, second} {
		if err := store.CreateReceipt(ctx, r); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}
	}

	summaries, err := store.ListReceipts(ctx)
	if err != nil {
		t.Fatalf("ListReceipts failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Title != "Two" || summaries[1].Title != "One" {
		t.Errorf("Expected newest first, got %s, %s", summaries[0].Title, summaries[1].Title)
	}
	if summaries[1].ParticipantCount != 2 {
		t.Errorf("Expected 2 participants, got %d", summaries[1].ParticipantCount)
	}
	if summaries[0].ParticipantCount != 0 {
		t.Errorf("Expected 0 participants, got %d", summaries[0].ParticipantCount)
	}
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		participants []string
		wantContains string
	}{
		{[]string{}, "Receipt -"},
		{[]string{"Alice"}, "Split with Alice"},
		{[]string{"Alice", "Bob"}, "Split with Alice, Bob"},
		{[]string{"Alice", "Bob", "Charlie"}, "Split with Alice, Bob, Charlie"},
		{[]string{"Alice", "Bob", "Charlie", "Diana"}, "and 2 others"},
	}

	for _, tt := range tests {
		t.Run(tt.wantContains, func(t *testing.T) {
			got := generateTitle(tt.participants)
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("generateTitle(%v) = %q, want to contain %q", tt.participants, got, tt.wantContains)
			}
		})
	}
}
