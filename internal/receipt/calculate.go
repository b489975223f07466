package receipt

import (
	"github.com/mmynk/tabsplit/internal/calculator"
	"github.com/mmynk/tabsplit/internal/models"
)

// Input coerces a receipt's raw fields into calculator input.
func Input(r *models.Receipt) calculator.Input {
	participants := make([]calculator.Participant, len(r.Participants))
	for i, p := range r.Participants {
		items := make([]calculator.Item, len(p.Items))
		for j, it := range p.Items {
			items[j] = calculator.Item{Name: it.Name, Price: it.Price}
		}
		participants[i] = calculator.Participant{ID: p.ID, Name: p.Name, Items: items}
	}
	return calculator.Input{
		DeclaredTotal:  calculator.CoerceTotal(r.DeclaredTotal),
		TaxPercent:     calculator.CoercePercent(r.TaxPercent),
		ServicePercent: calculator.CoercePercent(r.ServicePercent),
		Participants:   participants,
	}
}

// Calculate computes the breakdown for the receipt's current state.
func Calculate(r *models.Receipt) models.Breakdown {
	in := Input(r)
	subtotal := calculator.Subtotal(in.Participants)

	allocations := calculator.Allocate(in)
	out := make([]models.Allocation, len(allocations))
	for i, a := range allocations {
		out[i] = models.Allocation{
			ParticipantID: a.ParticipantID,
			Name:          a.Name,
			Subtotal:      a.Subtotal,
			Tax:           a.Tax,
			Service:       a.Service,
			Total:         a.Total,
		}
	}

	return models.Breakdown{
		Subtotal:    subtotal,
		Base:        calculator.Base(in.DeclaredTotal, subtotal),
		Allocations: out,
	}
}
