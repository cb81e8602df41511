package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/handler"
	"github.com/pkordes/parkslot-booking/backend/internal/handler/gen"
)

// mockDraftServicer is a test double for handler.DraftServicer.
// Set only the method fields your test needs.
type mockDraftServicer struct {
	availableDates  func(ctx context.Context, listingID uuid.UUID) (domain.DateIndex, error)
	create          func(ctx context.Context, listingID uuid.UUID, mode domain.DraftMode) (domain.DraftSnapshot, error)
	get             func(ctx context.Context, id uuid.UUID) (domain.DraftSnapshot, error)
	selectDate      func(ctx context.Context, id uuid.UUID, date domain.CalendarDate) (domain.DraftSnapshot, error)
	toggleDate      func(ctx context.Context, id uuid.UUID, date domain.CalendarDate) (domain.DraftSnapshot, error)
	addVehicle      func(ctx context.Context, id uuid.UUID, v domain.VehicleRecord) (domain.DraftSnapshot, error)
	removeVehicle   func(ctx context.Context, id uuid.UUID, vehicleID string) (domain.DraftSnapshot, error)
	setVehicleField func(ctx context.Context, id uuid.UUID, vehicleID, field, value string) (domain.DraftSnapshot, error)
}

func (m *mockDraftServicer) AvailableDates(ctx context.Context, listingID uuid.UUID) (domain.DateIndex, error) {
	return m.availableDates(ctx, listingID)
}
func (m *mockDraftServicer) Create(ctx context.Context, listingID uuid.UUID, mode domain.DraftMode) (domain.DraftSnapshot, error) {
	return m.create(ctx, listingID, mode)
}
func (m *mockDraftServicer) Get(ctx context.Context, id uuid.UUID) (domain.DraftSnapshot, error) {
	return m.get(ctx, id)
}
func (m *mockDraftServicer) SelectDate(ctx context.Context, id uuid.UUID, d domain.CalendarDate) (domain.DraftSnapshot, error) {
	return m.selectDate(ctx, id, d)
}
func (m *mockDraftServicer) ToggleDate(ctx context.Context, id uuid.UUID, d domain.CalendarDate) (domain.DraftSnapshot, error) {
	return m.toggleDate(ctx, id, d)
}
func (m *mockDraftServicer) AddVehicle(ctx context.Context, id uuid.UUID, v domain.VehicleRecord) (domain.DraftSnapshot, error) {
	return m.addVehicle(ctx, id, v)
}
func (m *mockDraftServicer) RemoveVehicle(ctx context.Context, id uuid.UUID, vehicleID string) (domain.DraftSnapshot, error) {
	return m.removeVehicle(ctx, id, vehicleID)
}
func (m *mockDraftServicer) SetVehicleField(ctx context.Context, id uuid.UUID, vehicleID, field, value string) (domain.DraftSnapshot, error) {
	return m.setVehicleField(ctx, id, vehicleID, field, value)
}

// compile-time check: mockDraftServicer must satisfy handler.DraftServicer.
var _ handler.DraftServicer = (*mockDraftServicer)(nil)

// mockCancellationServicer is a test double for handler.CancellationServicer.
type mockCancellationServicer struct {
	open         func(ctx context.Context, slotID uuid.UUID) (domain.CancellationSnapshot, error)
	get          func(ctx context.Context, id uuid.UUID) (domain.CancellationSnapshot, error)
	updateReason func(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationSnapshot, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.CancellationResult, error)
	dismiss      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCancellationServicer) Open(ctx context.Context, slotID uuid.UUID) (domain.CancellationSnapshot, error) {
	return m.open(ctx, slotID)
}
func (m *mockCancellationServicer) Get(ctx context.Context, id uuid.UUID) (domain.CancellationSnapshot, error) {
	return m.get(ctx, id)
}
func (m *mockCancellationServicer) UpdateReason(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationSnapshot, error) {
	return m.updateReason(ctx, id, reason)
}
func (m *mockCancellationServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.CancellationResult, error) {
	return m.confirm(ctx, id)
}
func (m *mockCancellationServicer) Dismiss(ctx context.Context, id uuid.UUID) error {
	return m.dismiss(ctx, id)
}

var _ handler.CancellationServicer = (*mockCancellationServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

// newDraftHandler wires a Server with the given mock into the generated chi
// router, the same way main.go does through Register.
func newDraftHandler(svc handler.DraftServicer) http.Handler {
	return handler.NewServer(svc, nil, nil, nil, nil).Handler()
}

func newCancellationHandler(svc handler.CancellationServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, nil, nil).Handler()
}
