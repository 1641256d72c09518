package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/tiptop/internal/calculator"
	"github.com/mmynk/tiptop/internal/form"
	"github.com/mmynk/tiptop/internal/metrics"
	"github.com/mmynk/tiptop/internal/models"
	"github.com/mmynk/tiptop/internal/storage"
	"github.com/mmynk/tiptop/pkg/api"
)

// Ensure TipService implements the Connect handler interface
var _ api.TipServiceHandler = (*TipService)(nil)

// TipService implements the Connect TipService
type TipService struct {
	store   storage.Store
	metrics *metrics.Metrics

	// Serializes read-modify-write cycles on sessions
	mu sync.Mutex
}

// NewTipService creates a new TipService with the given session store.
// m may be nil.
func NewTipService(store storage.Store, m *metrics.Metrics) *TipService {
	return &TipService{store: store, metrics: m}
}

// Calculate runs the engine on the request fields. It never fails.
func (s *TipService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	slog.Debug("Calculating tip",
		"bill", req.Msg.Bill,
		"tip_percentage", req.Msg.TipPercentage,
		"party_count", req.Msg.PartyCount,
	)

	result := calculator.CalculateTip(req.Msg.Bill, req.Msg.TipPercentage, req.Msg.PartyCount)
	s.metrics.ObserveCalculation(metrics.SourceRPC, result)

	return connect.NewResponse(&api.CalculateResponse{Result: toAPIResult(result)}), nil
}

// ListPresets returns the preset tip percentages in display order.
func (s *TipService) ListPresets(ctx context.Context, req *connect.Request[api.ListPresetsRequest]) (*connect.Response[api.ListPresetsResponse], error) {
	return connect.NewResponse(&api.ListPresetsResponse{Presets: calculator.Presets()}), nil
}

// CreateSession opens a form showing the defaults.
func (s *TipService) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	session := &models.Session{Inputs: models.DefaultInputs()}
	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, toConnectError(err)
	}
	s.refreshSessionGauge(ctx)

	slog.Info("Session created", "session_id", session.ID)
	return s.sessionResponse(session), nil
}

// GetSession returns the session's fields and derived result.
func (s *TipService) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}

	session, err := s.store.GetSession(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.sessionResponse(session), nil
}

// UpdateField overwrites one field with any text.
func (s *TipService) UpdateField(ctx context.Context, req *connect.Request[api.UpdateFieldRequest]) (*connect.Response[api.SessionResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}
	field, err := form.ParseField(req.Msg.Field)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return s.edit(ctx, req.Msg.SessionID, func(f *form.Form) error {
		return f.Set(field, req.Msg.Value)
	})
}

// SelectPreset writes a preset percentage into the tip field.
func (s *TipService) SelectPreset(ctx context.Context, req *connect.Request[api.SelectPresetRequest]) (*connect.Response[api.SessionResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}
	if !calculator.IsPreset(req.Msg.Percent) {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("%w: %d", form.ErrUnknownPreset, req.Msg.Percent))
	}

	return s.edit(ctx, req.Msg.SessionID, func(f *form.Form) error {
		return f.SelectPreset(req.Msg.Percent)
	})
}

// ResetSession restores the defaults.
func (s *TipService) ResetSession(ctx context.Context, req *connect.Request[api.ResetSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}

	return s.edit(ctx, req.Msg.SessionID, func(f *form.Form) error {
		f.Reset()
		return nil
	})
}

// CloseSession discards the session, as when a widget unmounts.
func (s *TipService) CloseSession(ctx context.Context, req *connect.Request[api.CloseSessionRequest]) (*connect.Response[api.CloseSessionResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteSession(ctx, req.Msg.SessionID); err != nil {
		return nil, toConnectError(err)
	}
	s.refreshSessionGauge(ctx)

	slog.Info("Session closed", "session_id", req.Msg.SessionID)
	return connect.NewResponse(&api.CloseSessionResponse{}), nil
}

// edit loads a session into a form, applies fn and stores the result.
func (s *TipService) edit(ctx context.Context, sessionID string, fn func(*form.Form) error) (*connect.Response[api.SessionResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, toConnectError(err)
	}

	f := form.FromInputs(session.Inputs)
	if err := fn(f); err != nil {
		return nil, toConnectError(err)
	}
	session.Inputs = f.Inputs()

	if err := s.store.UpdateSession(ctx, session); err != nil {
		slog.Error("UpdateSession failed", "session_id", sessionID, "error", err)
		return nil, toConnectError(err)
	}
	return s.sessionResponse(session), nil
}

func (s *TipService) sessionResponse(session *models.Session) *connect.Response[api.SessionResponse] {
	f := form.FromInputs(session.Inputs)
	result := f.Result()
	s.metrics.ObserveCalculation(metrics.SourceSession, result)

	out := api.Session{
		SessionID: session.ID,
		Inputs: api.Inputs{
			Bill:          session.Inputs.Bill,
			TipPercentage: session.Inputs.TipPercentage,
			PartyCount:    session.Inputs.PartyCount,
		},
		Result:    toAPIResult(result),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
	if p, ok := f.SelectedPreset(); ok {
		out.SelectedPreset = &p
	}
	return connect.NewResponse(&api.SessionResponse{Session: out})
}

func (s *TipService) refreshSessionGauge(ctx context.Context) {
	n, err := s.store.Count(ctx)
	if err != nil {
		slog.Warn("Failed to count sessions", "error", err)
		return
	}
	s.metrics.SetOpenSessions(n)
}

func toAPIResult(r calculator.Result) api.Result {
	return api.Result{
		PreTipPerPerson: r.PreTip,
		TipPerPerson:    r.Tip,
		TotalPerPerson:  r.Total,
	}
}

func requireSessionID(id string) error {
	if id == "" {
		return connect.NewError(connect.CodeInvalidArgument, errors.New("session_id is required"))
	}
	return nil
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrTooManySessions):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, form.ErrUnknownPreset):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
