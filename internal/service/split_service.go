package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/controller"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

// SplitService implements the tipsplit.v1.SplitService Connect service.
type SplitService struct {
	store             storage.Store
	metrics           *metrics.Metrics
	defaultTipPercent int
}

// NewSplitService creates a new SplitService with the given storage backend.
// m may be nil. New sessions start at defaultTipPercent unless the request
// sets one.
func NewSplitService(store storage.Store, m *metrics.Metrics, defaultTipPercent int) *SplitService {
	return &SplitService{
		store:             store,
		metrics:           m,
		defaultTipPercent: defaultTipPercent,
	}
}

// Compute returns the per-person amount for the given inputs without
// touching storage. Values are passed to the calculator as-is; a
// non-positive party_size yields 0. bill_amount beyond ±models.MaxBillAmount
// is rejected so the result is always finite.
func (s *SplitService) Compute(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	msg := req.Msg
	if err := checkKeys(msg, "bill_amount", "tip_percent", "party_size"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	bill, _, err := numberField(msg, "bill_amount")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if math.Abs(bill) > models.MaxBillAmount {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("bill_amount must be within ±%.0f", float64(models.MaxBillAmount)))
	}
	tip, _, err := intField(msg, "tip_percent")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	party, _, err := intField(msg, "party_size")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	amount := calculator.Compute(bill, tip, party)
	s.metrics.ObserveComputation(party)
	slog.Debug("Computed split",
		"bill_amount", bill,
		"tip_percent", tip,
		"party_size", party,
		"amount_per_person", amount,
	)

	resp, err := structpb.NewStruct(map[string]any{
		"amount_per_person": amount,
		"formatted":         calculator.FormatAmount(amount),
		"total":             calculator.Total(bill, tip),
		"tip_amount":        calculator.TipAmount(bill, tip),
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(resp), nil
}

// CreateSession starts a new editing session and persists it.
func (s *SplitService) CreateSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	msg := req.Msg
	if err := checkKeys(msg, "title", "bill_text", "tip_percent", "party_size"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	title, _, err := stringField(msg, "title")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	billText, _, err := stringField(msg, "bill_text")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	state := models.DefaultBillState()
	state.TipPercent = s.defaultTipPercent
	if tip, ok, err := intField(msg, "tip_percent"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	} else if ok {
		state.TipPercent = tip
	}
	if party, ok, err := intField(msg, "party_size"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	} else if ok {
		state.PartySize = party
	}

	ctrl := controller.New(state, billText, nil)
	s.metrics.ObserveComputation(ctrl.State().PartySize)

	session := &models.Session{Title: title}
	applySnapshot(session, ctrl.Snapshot())

	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	slog.Info("Session created", "session_id", session.ID, "title", session.Title)

	return sessionResponse(session)
}

// GetSession returns a stored session.
func (s *SplitService) GetSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	if err := checkKeys(req.Msg, "session_id"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	session, err := s.loadSession(ctx, req.Msg)
	if err != nil {
		return nil, err
	}
	return sessionResponse(session)
}

// UpdateSession applies one or more edits to a session, recomputes the
// per-person amount and persists the result. Edits run in a fixed order:
// bill_text, tip_percent, party_size, increment_party, decrement_party.
func (s *SplitService) UpdateSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	msg := req.Msg
	if err := checkKeys(msg, "session_id", "bill_text", "tip_percent", "party_size", "increment_party", "decrement_party"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	edits, err := parseEdits(msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if len(edits) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("no edit given"))
	}

	id, err := sessionID(msg)
	if err != nil {
		return nil, err
	}

	var snap controller.Snapshot
	session, err := s.store.UpdateSession(ctx, id, func(stored *models.Session) error {
		ctrl := controller.New(stored.State, stored.BillText, func(next controller.Snapshot) {
			s.metrics.ObserveComputation(next.State.PartySize)
		})
		for _, edit := range edits {
			edit(ctrl)
		}
		snap = ctrl.Snapshot()
		applySnapshot(stored, snap)
		return nil
	})
	if err != nil {
		slog.Error("UpdateSession failed", "session_id", id, "error", err)
		return nil, storeError(err)
	}
	slog.Debug("Session updated",
		"session_id", session.ID,
		"bill_amount", snap.State.BillAmount,
		"tip_percent", snap.State.TipPercent,
		"party_size", snap.State.PartySize,
		"amount_per_person", snap.AmountPerPerson,
	)

	return sessionResponse(session)
}

// DeleteSession removes a session.
func (s *SplitService) DeleteSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	if err := checkKeys(req.Msg, "session_id"); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	id, err := sessionID(req.Msg)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteSession(ctx, id); err != nil {
		slog.Error("DeleteSession failed", "session_id", id, "error", err)
		return nil, storeError(err)
	}
	slog.Info("Session deleted", "session_id", id)

	return connect.NewResponse(&structpb.Struct{Fields: map[string]*structpb.Value{}}), nil
}

func (s *SplitService) loadSession(ctx context.Context, msg *structpb.Struct) (*models.Session, error) {
	id, err := sessionID(msg)
	if err != nil {
		return nil, err
	}
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		slog.Error("GetSession failed", "session_id", id, "error", err)
		return nil, storeError(err)
	}
	return session, nil
}

func parseEdits(msg *structpb.Struct) ([]func(*controller.Controller), error) {
	var edits []func(*controller.Controller)

	if text, ok, err := stringField(msg, "bill_text"); err != nil {
		return nil, err
	} else if ok {
		edits = append(edits, func(c *controller.Controller) { c.SetBillText(text) })
	}
	if tip, ok, err := intField(msg, "tip_percent"); err != nil {
		return nil, err
	} else if ok {
		edits = append(edits, func(c *controller.Controller) { c.SetTipPercent(tip) })
	}
	if party, ok, err := intField(msg, "party_size"); err != nil {
		return nil, err
	} else if ok {
		edits = append(edits, func(c *controller.Controller) { c.SetPartySize(party) })
	}
	if inc, err := boolField(msg, "increment_party"); err != nil {
		return nil, err
	} else if inc {
		edits = append(edits, (*controller.Controller).IncrementParty)
	}
	if dec, err := boolField(msg, "decrement_party"); err != nil {
		return nil, err
	} else if dec {
		edits = append(edits, (*controller.Controller).DecrementParty)
	}

	return edits, nil
}

func sessionID(msg *structpb.Struct) (string, error) {
	id, _, err := stringField(msg, "session_id")
	if err != nil {
		return "", connect.NewError(connect.CodeInvalidArgument, err)
	}
	if id == "" {
		return "", connect.NewError(connect.CodeInvalidArgument, errors.New("session_id is required"))
	}
	return id, nil
}

func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func applySnapshot(session *models.Session, snap controller.Snapshot) {
	session.State = snap.State
	session.BillText = snap.BillText
	session.AmountPerPerson = snap.AmountPerPerson
}

func sessionResponse(session *models.Session) (*connect.Response[structpb.Struct], error) {
	resp, err := structpb.NewStruct(map[string]any{
		"session_id":        session.ID,
		"title":             session.Title,
		"bill_text":         session.BillText,
		"bill_valid":        controller.ValidBillText(session.BillText),
		"bill_amount":       session.State.BillAmount,
		"tip_percent":       session.State.TipPercent,
		"party_size":        session.State.PartySize,
		"can_decrement":     session.State.PartySize > models.MinPartySize,
		"amount_per_person": session.AmountPerPerson,
		"formatted":         calculator.FormatAmount(session.AmountPerPerson),
		"created_at":        session.CreatedAt,
		"updated_at":        session.UpdatedAt,
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to encode session: %w", err))
	}
	return connect.NewResponse(resp), nil
}
