package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/events"
	"github.com/pkordes/parkslot-booking/backend/internal/service"
)

const testTTL = 30 * time.Minute

func day(s string) domain.CalendarDate {
	return domain.MustParseCalendarDate(s)
}

type draftHarness struct {
	svc      *service.DraftService
	vehicles *mockVehicleRepo
	pub      *recordingPublisher
}

func newDraftHarness(avail *mockAvailabilityRepo) draftHarness {
	h := draftHarness{vehicles: &mockVehicleRepo{}, pub: &recordingPublisher{}}
	h.svc = service.NewDraftService(avail, h.vehicles, h.pub, nil, testTTL)
	return h
}

func (h draftHarness) create(t *testing.T, mode domain.DraftMode) domain.DraftSnapshot {
	t.Helper()
	snap, err := h.svc.Create(context.Background(), uuid.New(), mode)
	require.NoError(t, err)
	return snap
}

// ---- Create / Get ----------------------------------------------------------

func TestDraftService_Create(t *testing.T) {
	h := newDraftHarness(offering())
	listing := uuid.New()

	snap, err := h.svc.Create(context.Background(), listing, domain.DraftModeMulti)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, snap.ID)
	assert.Equal(t, listing, snap.ListingID)
	assert.Nil(t, snap.SelectedDate)
	assert.NotNil(t, snap.SelectedDates)
	assert.Empty(t, snap.SelectedDates)
	assert.Empty(t, snap.Vehicles)

	got, err := h.svc.Get(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
}

func TestDraftService_Create_InvalidMode(t *testing.T) {
	h := newDraftHarness(offering())

	_, err := h.svc.Create(context.Background(), uuid.New(), domain.DraftMode("weekly"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_Create_MissingListing(t *testing.T) {
	h := newDraftHarness(offering())

	_, err := h.svc.Create(context.Background(), uuid.Nil, domain.DraftModeSingle)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_Get_NotFound(t *testing.T) {
	h := newDraftHarness(offering())

	_, err := h.svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- single date -----------------------------------------------------------

func TestDraftService_SelectDate(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01", "2024-06-02"))
	d := h.create(t, domain.DraftModeSingle)

	_, err := h.svc.SelectDate(context.Background(), d.ID, day("2024-06-01"))
	require.NoError(t, err)
	snap, err := h.svc.SelectDate(context.Background(), d.ID, day("2024-06-02"))

	require.NoError(t, err)
	require.NotNil(t, snap.SelectedDate)
	assert.Equal(t, day("2024-06-02"), *snap.SelectedDate)
	assert.Equal(t, []events.Type{events.TypeDateSelected, events.TypeDateSelected}, h.pub.types())
}

func TestDraftService_SelectDate_NotOffered(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01"))
	d := h.create(t, domain.DraftModeSingle)

	_, err := h.svc.SelectDate(context.Background(), d.ID, day("2024-07-04"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	got, _ := h.svc.Get(context.Background(), d.ID)
	assert.Nil(t, got.SelectedDate)
	assert.Empty(t, h.pub.types(), "nothing is emitted for a refused selection")
}

func TestDraftService_SelectDate_WrongMode(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01"))
	d := h.create(t, domain.DraftModeMulti)

	_, err := h.svc.SelectDate(context.Background(), d.ID, day("2024-06-01"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_SelectDate_AvailabilityError(t *testing.T) {
	dbErr := errors.New("db exploded")
	h := newDraftHarness(&mockAvailabilityRepo{
		listDates: func(context.Context, uuid.UUID, domain.CalendarDate) ([]domain.CalendarDate, error) {
			return nil, dbErr
		},
	})
	d := h.create(t, domain.DraftModeSingle)

	_, err := h.svc.SelectDate(context.Background(), d.ID, day("2024-06-01"))

	assert.ErrorIs(t, err, dbErr)
}

func TestDraftService_SelectDate_UnknownDraft(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01"))

	_, err := h.svc.SelectDate(context.Background(), uuid.New(), day("2024-06-01"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- multi date ------------------------------------------------------------

func TestDraftService_ToggleDate_Scenario(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01", "2024-06-02"))
	d := h.create(t, domain.DraftModeMulti)
	ctx := context.Background()

	snap, err := h.svc.ToggleDate(ctx, d.ID, day("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, []domain.CalendarDate{day("2024-06-01")}, snap.SelectedDates)

	snap, err = h.svc.ToggleDate(ctx, d.ID, day("2024-06-02"))
	require.NoError(t, err)
	assert.Equal(t, []domain.CalendarDate{day("2024-06-01"), day("2024-06-02")}, snap.SelectedDates)

	snap, err = h.svc.ToggleDate(ctx, d.ID, day("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, []domain.CalendarDate{day("2024-06-02")}, snap.SelectedDates)

	assert.Len(t, h.pub.types(), 3)
}

func TestDraftService_ToggleDate_DeselectAfterWithdrawn(t *testing.T) {
	offered := []domain.CalendarDate{day("2024-06-01")}
	h := newDraftHarness(&mockAvailabilityRepo{
		listDates: func(context.Context, uuid.UUID, domain.CalendarDate) ([]domain.CalendarDate, error) {
			return offered, nil
		},
	})
	d := h.create(t, domain.DraftModeMulti)
	ctx := context.Background()

	_, err := h.svc.ToggleDate(ctx, d.ID, day("2024-06-01"))
	require.NoError(t, err)

	// The host withdraws the date; the user can still take it off.
	offered = nil
	snap, err := h.svc.ToggleDate(ctx, d.ID, day("2024-06-01"))
	require.NoError(t, err)
	assert.Empty(t, snap.SelectedDates)

	// But cannot put it back.
	_, err = h.svc.ToggleDate(ctx, d.ID, day("2024-06-01"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_ToggleDate_WrongMode(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01"))
	d := h.create(t, domain.DraftModeSingle)

	_, err := h.svc.ToggleDate(context.Background(), d.ID, day("2024-06-01"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_ToggleDate_ConcurrentTogglesSerialize(t *testing.T) {
	days := make([]string, 20)
	for i := range days {
		days[i] = fmt.Sprintf("2024-06-%02d", i+1)
	}
	h := newDraftHarness(offering(days...))
	d := h.create(t, domain.DraftModeMulti)

	var wg sync.WaitGroup
	for _, s := range days {
		wg.Add(1)
		go func(s string) {
			defer wg.Done()
			_, err := h.svc.ToggleDate(context.Background(), d.ID, day(s))
			assert.NoError(t, err)
		}(s)
	}
	wg.Wait()

	got, err := h.svc.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Len(t, got.SelectedDates, 20, "no toggle is lost")
}

// ---- vehicles --------------------------------------------------------------

func TestDraftService_AddVehicle(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)

	snap, err := h.svc.AddVehicle(context.Background(), d.ID, domain.VehicleRecord{Type: "SUV", Plate: "AB123"})

	require.NoError(t, err)
	require.Len(t, snap.Vehicles, 1)
	assert.NotEmpty(t, snap.Vehicles[0].ID)
	assert.Equal(t, domain.VehicleTypeSUV, snap.Vehicles[0].Type)
	assert.Equal(t, []events.Type{events.TypeRosterChanged}, h.pub.types())
}

func TestDraftService_AddVehicle_InvalidType(t *testing.T) {
	h := newDraftHarness(offering())
	h.vehicles.add = func(context.Context, uuid.UUID, domain.VehicleRecord) (domain.VehicleRecord, error) {
		t.Fatal("repo must not be called for invalid input")
		return domain.VehicleRecord{}, nil
	}
	d := h.create(t, domain.DraftModeSingle)

	_, err := h.svc.AddVehicle(context.Background(), d.ID, domain.VehicleRecord{Type: "hovercraft"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_SetVehicleField(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	ctx := context.Background()
	snap, err := h.svc.AddVehicle(ctx, d.ID, domain.VehicleRecord{})
	require.NoError(t, err)
	v1 := snap.Vehicles[0].ID
	snap, err = h.svc.AddVehicle(ctx, d.ID, domain.VehicleRecord{Plate: "OTHER"})
	require.NoError(t, err)
	other := snap.Vehicles[1]

	snap, err = h.svc.SetVehicleField(ctx, d.ID, v1, "plate", "ABC123")

	require.NoError(t, err)
	assert.Equal(t, "ABC123", snap.Vehicles[0].Plate)
	assert.Equal(t, domain.VehicleTypeUnset, snap.Vehicles[0].Type)
	assert.Equal(t, other, snap.Vehicles[1], "other vehicles are untouched")
	assert.Equal(t, []domain.VehicleChange{
		{VehicleID: v1, Field: domain.VehicleFieldPlate, Value: "ABC123"},
	}, h.vehicles.updates)
	assert.Equal(t, events.TypeVehicleChanged, h.pub.types()[len(h.pub.types())-1])
}

func TestDraftService_SetVehicleField_UnknownVehicle(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	_, err := h.svc.AddVehicle(context.Background(), d.ID, domain.VehicleRecord{})
	require.NoError(t, err)

	_, err = h.svc.SetVehicleField(context.Background(), d.ID, "v2", "plate", "X")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, h.vehicles.updates)
}

func TestDraftService_SetVehicleField_Invalid(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	snap, err := h.svc.AddVehicle(context.Background(), d.ID, domain.VehicleRecord{})
	require.NoError(t, err)
	id := snap.Vehicles[0].ID

	_, err = h.svc.SetVehicleField(context.Background(), d.ID, id, "colour", "red")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.svc.SetVehicleField(context.Background(), d.ID, id, "type", "hovercraft")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, h.vehicles.updates)
}

func TestDraftService_SetVehicleField_PersistFailureSuppressesEvent(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	snap, err := h.svc.AddVehicle(context.Background(), d.ID, domain.VehicleRecord{})
	require.NoError(t, err)
	before := len(h.pub.types())

	dbErr := errors.New("db exploded")
	h.vehicles.updateField = func(context.Context, uuid.UUID, domain.VehicleChange) error { return dbErr }

	_, err = h.svc.SetVehicleField(context.Background(), d.ID, snap.Vehicles[0].ID, "plate", "X")

	assert.ErrorIs(t, err, dbErr)
	assert.Len(t, h.pub.types(), before, "subscribers never see an edit the store rejected")
	got, _ := h.svc.Get(context.Background(), d.ID)
	assert.Empty(t, got.Vehicles[0].Plate, "the rejected edit is rolled back")
}

func TestDraftService_RemoveVehicle(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	ctx := context.Background()
	_, err := h.svc.AddVehicle(ctx, d.ID, domain.VehicleRecord{Plate: "A"})
	require.NoError(t, err)
	snap, err := h.svc.AddVehicle(ctx, d.ID, domain.VehicleRecord{Plate: "B"})
	require.NoError(t, err)

	snap, err = h.svc.RemoveVehicle(ctx, d.ID, snap.Vehicles[0].ID)

	require.NoError(t, err)
	require.Len(t, snap.Vehicles, 1)
	assert.Equal(t, "B", snap.Vehicles[0].Plate)

	_, err = h.svc.RemoveVehicle(ctx, d.ID, "not-there")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftService_RemoveVehicle_RepoError(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	snap, err := h.svc.AddVehicle(context.Background(), d.ID, domain.VehicleRecord{})
	require.NoError(t, err)
	h.vehicles.remove = func(context.Context, uuid.UUID, string) error { return domain.ErrNotFound }

	_, err = h.svc.RemoveVehicle(context.Background(), d.ID, snap.Vehicles[0].ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	got, _ := h.svc.Get(context.Background(), d.ID)
	assert.Len(t, got.Vehicles, 1, "roster unchanged when the owner refuses the removal")
}

// ---- expiry ----------------------------------------------------------------

func TestDraftService_ExpireIdle(t *testing.T) {
	h := newDraftHarness(offering("2024-06-01"))
	stale := h.create(t, domain.DraftModeSingle)
	ctx := context.Background()

	assert.Equal(t, 0, h.svc.ExpireIdle(ctx, time.Now()), "fresh drafts survive")

	removed := h.svc.ExpireIdle(ctx, time.Now().Add(testTTL+time.Second))

	assert.Equal(t, 1, removed)
	_, err := h.svc.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []uuid.UUID{stale.ID}, h.vehicles.deleted)
	assert.Equal(t, []uuid.UUID{stale.ID}, h.pub.closed)
	assert.Contains(t, h.pub.types(), events.TypeDraftExpired)
}

func TestDraftService_ExpireIdle_DuringAddVehicle(t *testing.T) {
	// rows models draft_vehicles: draft ID -> vehicle IDs written for it.
	var mu sync.Mutex
	rows := map[uuid.UUID][]string{}

	entered := make(chan struct{})
	release := make(chan struct{})
	h := newDraftHarness(offering())
	h.vehicles.add = func(_ context.Context, draftID uuid.UUID, v domain.VehicleRecord) (domain.VehicleRecord, error) {
		close(entered)
		<-release
		v.ID = uuid.NewString()
		mu.Lock()
		rows[draftID] = append(rows[draftID], v.ID)
		mu.Unlock()
		return v, nil
	}
	h.vehicles.deleteByDraft = func(_ context.Context, draftID uuid.UUID) error {
		mu.Lock()
		delete(rows, draftID)
		mu.Unlock()
		return nil
	}
	d := h.create(t, domain.DraftModeSingle)
	ctx := context.Background()

	addErr := make(chan error, 1)
	go func() {
		_, err := h.svc.AddVehicle(ctx, d.ID, domain.VehicleRecord{Type: domain.VehicleTypeSedan})
		addErr <- err
	}()
	<-entered

	require.Equal(t, 1, h.svc.ExpireIdle(ctx, time.Now().Add(testTTL+time.Hour)))
	close(release)

	assert.ErrorIs(t, <-addErr, domain.ErrNotFound)
	mu.Lock()
	assert.Empty(t, rows, "no vehicle outlives its expired draft")
	mu.Unlock()
	assert.NotContains(t, h.pub.types(), events.TypeRosterChanged)
}

func TestDraftService_StepAfterExpiry(t *testing.T) {
	h := newDraftHarness(offering())
	d := h.create(t, domain.DraftModeSingle)
	ctx := context.Background()
	h.svc.ExpireIdle(ctx, time.Now().Add(testTTL+time.Second))

	_, err := h.svc.AddVehicle(ctx, d.ID, domain.VehicleRecord{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftService_AvailableDates(t *testing.T) {
	h := newDraftHarness(offering("2024-06-02", "2024-06-01"))

	idx, err := h.svc.AvailableDates(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, []domain.CalendarDate{day("2024-06-02"), day("2024-06-01")}, idx.Dates(),
		"the supplied order is kept")
}
