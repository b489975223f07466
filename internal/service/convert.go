package service

import (
	"math"
	"strings"

	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/receipt"
	"github.com/mmynk/tabsplit/internal/storage"
	"github.com/mmynk/tabsplit/pkg/api"
)

func toAPIReceipt(r *models.Receipt) *api.Receipt {
	participants := make([]*api.Participant, len(r.Participants))
	for i, p := range r.Participants {
		items := make([]*api.Item, len(p.Items))
		for j, it := range p.Items {
			items[j] = &api.Item{Name: it.Name, Price: it.Price}
		}
		participants[i] = &api.Participant{Id: p.ID, Name: p.Name, Items: items}
	}
	return &api.Receipt{
		Id:             r.ID,
		Title:          r.Title,
		DeclaredTotal:  r.DeclaredTotal,
		TaxPercent:     r.TaxPercent,
		ServicePercent: r.ServicePercent,
		Participants:   participants,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// finite maps NaN and infinities to 0; JSON cannot carry them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func toAPIBreakdown(b models.Breakdown) *api.Breakdown {
	allocations := make([]*api.Allocation, len(b.Allocations))
	for i, a := range b.Allocations {
		allocations[i] = &api.Allocation{
			ParticipantId: a.ParticipantID,
			Name:          a.Name,
			ItemsTotal:    finite(a.Subtotal),
			Tax:           finite(a.Tax),
			Service:       finite(a.Service),
			Total:         finite(a.Total),
		}
	}
	return &api.Breakdown{
		Subtotal:    finite(b.Subtotal),
		Base:        finite(b.Base),
		Allocations: allocations,
	}
}

func toAPISummary(s storage.ReceiptSummary) *api.ReceiptSummary {
	return &api.ReceiptSummary{
		Id:               s.ID,
		Title:            s.Title,
		ParticipantCount: int32(s.ParticipantCount),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// fromAPIParticipants converts request participants, dropping unnamed
// participants and items that AddItem would reject.
func fromAPIParticipants(in []*api.Participant) []models.Participant {
	out := make([]models.Participant, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		items := make([]models.Item, 0, len(p.Items))
		for _, it := range p.Items {
			if it == nil {
				continue
			}
			if item, ok := receipt.NewItem(it.Name, it.Price); ok {
				items = append(items, item)
			}
		}
		out = append(out, models.Participant{ID: p.Id, Name: name, Items: items})
	}
	return out
}
