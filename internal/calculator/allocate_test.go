package calculator

import (
	"math"
	"testing"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		input        Input
		wantCount    int
		validateFunc func(t *testing.T, got []Allocation)
	}{
		{
			name: "single participant with tax and service",
			input: Input{
				TaxPercent:     10,
				ServicePercent: 5,
				Participants: []Participant{
					{ID: "a", Name: "Alice", Items: []Item{{Name: "Coffee", Price: 10}}},
				},
			},
			wantCount: 1,
			validateFunc: func(t *testing.T, got []Allocation) {
				// subtotal = 10, ratio = 1, tax = 10 * 0.10 = 1, service = 10 * 0.05 = 0.5
				alice := got[0]
				if math.Abs(alice.Subtotal-10.0) > 0.001 {
					t.Errorf("Alice subtotal = %v, want 10.0", alice.Subtotal)
				}
				if math.Abs(alice.Tax-1.0) > 0.001 {
					t.Errorf("Alice tax = %v, want 1.0", alice.Tax)
				}
				if math.Abs(alice.Service-0.5) > 0.001 {
					t.Errorf("Alice service = %v, want 0.5", alice.Service)
				}
				if math.Abs(alice.Total-11.5) > 0.001 {
					t.Errorf("Alice total = %v, want 11.5", alice.Total)
				}
			},
		},
		{
			name: "declared total is the base for service",
			input: Input{
				DeclaredTotal:  50,
				TaxPercent:     0,
				ServicePercent: 10,
				Participants: []Participant{
					{ID: "a", Name: "Alice", Items: []Item{{Name: "Soup", Price: 10}}},
					{ID: "b", Name: "Bob", Items: []Item{{Name: "Steak", Price: 30}}},
				},
			},
			wantCount: 2,
			validateFunc: func(t *testing.T, got []Allocation) {
				// subtotal = 40; Alice ratio 0.25 -> 50 * 0.10 * 0.25 = 1.25
				// Bob ratio 0.75 -> 3.75
				alice, bob := got[0], got[1]
				if alice.Name != "Alice" || bob.Name != "Bob" {
					t.Fatalf("order = %s, %s; want Alice, Bob", alice.Name, bob.Name)
				}
				if math.Abs(alice.Service-1.25) > 0.001 {
					t.Errorf("Alice service = %v, want 1.25", alice.Service)
				}
				if math.Abs(alice.Total-11.25) > 0.001 {
					t.Errorf("Alice total = %v, want 11.25", alice.Total)
				}
				if alice.Tax != 0 {
					t.Errorf("Alice tax = %v, want 0", alice.Tax)
				}
				if math.Abs(bob.Service-3.75) > 0.001 {
					t.Errorf("Bob service = %v, want 3.75", bob.Service)
				}
				if math.Abs(bob.Total-33.75) > 0.001 {
					t.Errorf("Bob total = %v, want 33.75", bob.Total)
				}
			},
		},
		{
			name: "participant without items still gets a zero row",
			input: Input{
				TaxPercent: 10,
				Participants: []Participant{
					{ID: "a", Name: "Alice", Items: []Item{{Name: "Tea", Price: 4}, {Name: "Cake", Price: 6}}},
					{ID: "b", Name: "Bob"},
				},
			},
			wantCount: 2,
			validateFunc: func(t *testing.T, got []Allocation) {
				if got[0].Subtotal != 10 {
					t.Errorf("Alice subtotal = %v, want 10", got[0].Subtotal)
				}
				if got[1].Total != 0 {
					t.Errorf("Bob total = %v, want 0", got[1].Total)
				}
				if got[1].ParticipantID != "b" {
					t.Errorf("Bob id = %q, want b", got[1].ParticipantID)
				}
			},
		},
		{
			name: "zero subtotal yields nothing",
			input: Input{
				TaxPercent:     10,
				ServicePercent: 5,
				Participants: []Participant{
					{ID: "a", Name: "Alice"},
					{ID: "b", Name: "Bob", Items: []Item{{Name: "Water", Price: 0}}},
				},
			},
			wantCount: 0,
		},
		{
			name:      "no participants yields nothing",
			input:     Input{TaxPercent: 10},
			wantCount: 0,
		},
		{
			name: "non-finite prices count as zero",
			input: Input{
				Participants: []Participant{
					{ID: "a", Name: "Alice", Items: []Item{{Name: "Bad", Price: math.NaN()}, {Name: "Good", Price: 5}}},
				},
			},
			wantCount: 1,
			validateFunc: func(t *testing.T, got []Allocation) {
				if got[0].Subtotal != 5 {
					t.Errorf("Alice subtotal = %v, want 5", got[0].Subtotal)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.input)
			if len(got) != tt.wantCount {
				t.Fatalf("Allocate() returned %d allocations, want %d", len(got), tt.wantCount)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, got)
			}
		})
	}
}

func TestAllocate_SumsMatchBill(t *testing.T) {
	participants := []Participant{
		{ID: "a", Name: "Alice", Items: []Item{{Name: "Pasta", Price: 13.7}, {Name: "Wine", Price: 9.15}}},
		{ID: "b", Name: "Bob", Items: []Item{{Name: "Burger", Price: 11.99}}},
		{ID: "c", Name: "Charlie", Items: []Item{{Name: "Salad", Price: 7.33}, {Name: "Soda", Price: 2.5}}},
	}
	subtotal := Subtotal(participants)

	tests := []struct {
		name     string
		declared float64
		tax      float64
		service  float64
	}{
		{"no declared total", 0, 8.25, 12.5},
		{"declared total above subtotal", 60, 10, 5},
		{"declared total below subtotal", 30, 7, 0},
		{"no charges", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(Input{
				DeclaredTotal:  tt.declared,
				TaxPercent:     tt.tax,
				ServicePercent: tt.service,
				Participants:   participants,
			})

			var sumSubtotal, sumTotal float64
			for _, a := range got {
				sumSubtotal += a.Subtotal
				sumTotal += a.Total
			}

			if math.Abs(sumSubtotal-subtotal) > 1e-9 {
				t.Errorf("sum of subtotals = %v, want %v", sumSubtotal, subtotal)
			}

			base := Base(tt.declared, subtotal)
			want := subtotal + base*(tt.tax+tt.service)/100
			if math.Abs(sumTotal-want) > 1e-9 {
				t.Errorf("sum of totals = %v, want %v", sumTotal, want)
			}
		})
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		declared float64
		subtotal float64
		want     float64
	}{
		{0, 40, 40},
		{50, 40, 50},
		{math.NaN(), 40, 40},
		{math.Inf(1), 40, 40},
		{-5, 40, -5},
	}
	for _, tt := range tests {
		if got := Base(tt.declared, tt.subtotal); got != tt.want {
			t.Errorf("Base(%v, %v) = %v, want %v", tt.declared, tt.subtotal, got, tt.want)
		}
	}
}
