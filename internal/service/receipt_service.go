package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/tabsplit/internal/auth"
	"github.com/mmynk/tabsplit/internal/middleware"
	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/receipt"
	"github.com/mmynk/tabsplit/internal/storage"
	"github.com/mmynk/tabsplit/pkg/api"
	"github.com/mmynk/tabsplit/pkg/api/apiconnect"
)

// ReceiptService implements the Connect ReceiptService
type ReceiptService struct {
	apiconnect.UnimplementedReceiptServiceHandler
	store    storage.Store
	tokens   *auth.TokenManager
	metrics  *middleware.RPCMetrics
	validate *validator.Validate

	// mu serializes load/modify/save so concurrent edits are not lost.
	mu sync.Mutex
}

// NewReceiptService creates a new ReceiptService with the given storage backend.
// metrics may be nil.
func NewReceiptService(store storage.Store, tokens *auth.TokenManager, metrics *middleware.RPCMetrics) *ReceiptService {
	return &ReceiptService{
		store:    store,
		tokens:   tokens,
		metrics:  metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// validateRequest checks struct tags on a request message.
func (s *ReceiptService) validateRequest(msg any) error {
	if err := s.validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// authorize checks that the caller holds an edit token for receiptID.
func authorize(ctx context.Context, receiptID string) error {
	granted := middleware.GetTokenReceiptID(ctx)
	if granted == "" {
		return connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if granted != receiptID {
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("token does not grant access to receipt %s", receiptID))
	}
	return nil
}

// storeError maps storage failures to Connect codes.
func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// Calculate computes a breakdown for a bill sent in full. Nothing is stored.
func (s *ReceiptService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	r := &models.Receipt{
		DeclaredTotal:  req.Msg.DeclaredTotal,
		TaxPercent:     req.Msg.TaxPercent,
		ServicePercent: req.Msg.ServicePercent,
		Participants:   fromAPIParticipants(req.Msg.Participants),
	}

	breakdown := receipt.Calculate(r)
	slog.Debug("Calculated breakdown",
		"participants", len(r.Participants),
		"subtotal", breakdown.Subtotal,
		"base", breakdown.Base,
		"allocations", len(breakdown.Allocations),
	)

	return connect.NewResponse(&api.CalculateResponse{
		Breakdown: toAPIBreakdown(breakdown),
	}), nil
}

// CreateReceipt creates an empty receipt and returns its edit token.
func (s *ReceiptService) CreateReceipt(ctx context.Context, req *connect.Request[api.CreateReceiptRequest]) (*connect.Response[api.CreateReceiptResponse], error) {
	r := receipt.New(req.Msg.Title)
	receipt.SetRates(r, receipt.Rates{
		TaxPercent:     req.Msg.TaxPercent,
		ServicePercent: req.Msg.ServicePercent,
		DeclaredTotal:  req.Msg.DeclaredTotal,
	})

	// Save to storage (generates ID, title and timestamps)
	if err := s.store.CreateReceipt(ctx, r); err != nil {
		slog.Error("CreateReceipt failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.tokens.Generate(r.ID)
	if err != nil {
		slog.Error("CreateReceipt token generation failed", "receipt_id", r.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Receipt created", "receipt_id", r.ID, "title", r.Title)

	return connect.NewResponse(&api.CreateReceiptResponse{
		Receipt:   toAPIReceipt(r),
		Breakdown: toAPIBreakdown(receipt.Calculate(r)),
		EditToken: token,
	}), nil
}

// GetReceipt retrieves a receipt and its freshly calculated breakdown.
func (s *ReceiptService) GetReceipt(ctx context.Context, req *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	r, err := s.store.GetReceipt(ctx, req.Msg.ReceiptId)
	if err != nil {
		slog.Error("GetReceipt failed", "receipt_id", req.Msg.ReceiptId, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.GetReceiptResponse{
		Receipt:   toAPIReceipt(r),
		Breakdown: toAPIBreakdown(receipt.Calculate(r)),
	}), nil
}

// ListReceipts returns summaries of all stored receipts.
func (s *ReceiptService) ListReceipts(ctx context.Context, req *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error) {
	summaries, err := s.store.ListReceipts(ctx)
	if err != nil {
		slog.Error("ListReceipts failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*api.ReceiptSummary, len(summaries))
	for i, sum := range summaries {
		out[i] = toAPISummary(sum)
	}

	slog.Debug("ListReceipts successful", "count", len(out))

	return connect.NewResponse(&api.ListReceiptsResponse{Receipts: out}), nil
}

// DeleteReceipt deletes a receipt with its participants and items.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, req *connect.Request[api.DeleteReceiptRequest]) (*connect.Response[api.DeleteReceiptResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if err := authorize(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteReceipt(ctx, req.Msg.ReceiptId); err != nil {
		slog.Error("DeleteReceipt failed", "receipt_id", req.Msg.ReceiptId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Receipt deleted", "receipt_id", req.Msg.ReceiptId)

	return connect.NewResponse(&api.DeleteReceiptResponse{}), nil
}

// AddParticipant adds a person to the receipt. Blank names are ignored.
func (s *ReceiptService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.EditResponse], error) {
	var participantID string
	resp, err := s.edit(ctx, req.Spec().Procedure, req.Msg, req.Msg.ReceiptId, func(r *models.Receipt) bool {
		p := receipt.AddParticipant(r, req.Msg.Name)
		if p == nil {
			return false
		}
		participantID = p.ID
		return true
	})
	if err != nil {
		return nil, err
	}
	resp.ParticipantId = participantID
	return connect.NewResponse(resp), nil
}

// RemoveParticipant removes a person and all of their items.
func (s *ReceiptService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.EditResponse], error) {
	resp, err := s.edit(ctx, req.Spec().Procedure, req.Msg, req.Msg.ReceiptId, func(r *models.Receipt) bool {
		return receipt.RemoveParticipant(r, req.Msg.ParticipantId)
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

// AddItem adds a priced item to a participant.
func (s *ReceiptService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.EditResponse], error) {
	slog.Debug("Processing item",
		"receipt_id", req.Msg.ReceiptId,
		"participant_id", req.Msg.ParticipantId,
		"name", req.Msg.Name,
		"price", req.Msg.Price,
	)
	resp, err := s.edit(ctx, req.Spec().Procedure, req.Msg, req.Msg.ReceiptId, func(r *models.Receipt) bool {
		return receipt.AddItem(r, req.Msg.ParticipantId, req.Msg.Name, req.Msg.Price)
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

// RemoveItem removes the item at the given index from a participant.
func (s *ReceiptService) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.EditResponse], error) {
	resp, err := s.edit(ctx, req.Spec().Procedure, req.Msg, req.Msg.ReceiptId, func(r *models.Receipt) bool {
		return receipt.RemoveItem(r, req.Msg.ParticipantId, int(req.Msg.Index))
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

// SetRates updates tax, service and declared total. Any text is accepted;
// unparseable values fall back to defaults at calculation time. An update
// that changes nothing is not accepted and not saved.
func (s *ReceiptService) SetRates(ctx context.Context, req *connect.Request[api.SetRatesRequest]) (*connect.Response[api.EditResponse], error) {
	resp, err := s.edit(ctx, req.Spec().Procedure, req.Msg, req.Msg.ReceiptId, func(r *models.Receipt) bool {
		return receipt.SetRates(r, receipt.Rates{
			TaxPercent:     req.Msg.TaxPercent,
			ServicePercent: req.Msg.ServicePercent,
			DeclaredTotal:  req.Msg.DeclaredTotal,
		})
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

// edit runs apply against the stored receipt under the service lock, saves
// the result when apply accepted the change, and returns the current state.
func (s *ReceiptService) edit(ctx context.Context, procedure string, msg any, receiptID string, apply func(r *models.Receipt) bool) (*api.EditResponse, error) {
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}
	if err := authorize(ctx, receiptID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.store.GetReceipt(ctx, receiptID)
	if err != nil {
		slog.Error("Edit failed to load receipt", "procedure", procedure, "receipt_id", receiptID, "error", err)
		return nil, storeError(err)
	}

	accepted := apply(r)
	if accepted {
		if err := s.store.UpdateReceipt(ctx, r); err != nil {
			slog.Error("Edit failed to save receipt", "procedure", procedure, "receipt_id", receiptID, "error", err)
			return nil, storeError(err)
		}
	} else {
		slog.Debug("Edit ignored", "procedure", procedure, "receipt_id", receiptID)
		s.metrics.ObserveRejected(procedure)
	}

	return &api.EditResponse{
		Accepted:  accepted,
		Receipt:   toAPIReceipt(r),
		Breakdown: toAPIBreakdown(receipt.Calculate(r)),
	}, nil
}
