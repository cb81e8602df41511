// Package handler implements the HTTP handlers for the parkslot booking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface
// (generated from spec/openapi.yaml) plus the websocket event stream.
// Methods are split into domain-specific files (health.go, drafts.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/events"
	"github.com/pkordes/parkslot-booking/backend/internal/handler/gen"
)

// DraftServicer defines the booking draft operations the handlers depend on.
// Defined here, in the consumer package, so handler tests can inject a mock
// without touching the database or service layer.
type DraftServicer interface {
	AvailableDates(ctx context.Context, listingID uuid.UUID) (domain.DateIndex, error)
	Create(ctx context.Context, listingID uuid.UUID, mode domain.DraftMode) (domain.DraftSnapshot, error)
	Get(ctx context.Context, id uuid.UUID) (domain.DraftSnapshot, error)
	SelectDate(ctx context.Context, id uuid.UUID, date domain.CalendarDate) (domain.DraftSnapshot, error)
	ToggleDate(ctx context.Context, id uuid.UUID, date domain.CalendarDate) (domain.DraftSnapshot, error)
	AddVehicle(ctx context.Context, id uuid.UUID, vehicle domain.VehicleRecord) (domain.DraftSnapshot, error)
	RemoveVehicle(ctx context.Context, id uuid.UUID, vehicleID string) (domain.DraftSnapshot, error)
	SetVehicleField(ctx context.Context, id uuid.UUID, vehicleID, field, value string) (domain.DraftSnapshot, error)
}

// CancellationServicer defines the slot cancellation operations the handlers depend on.
type CancellationServicer interface {
	Open(ctx context.Context, slotID uuid.UUID) (domain.CancellationSnapshot, error)
	Get(ctx context.Context, id uuid.UUID) (domain.CancellationSnapshot, error)
	UpdateReason(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationSnapshot, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.CancellationResult, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

// Subscriber hands out live event streams for a draft. Satisfied by *events.Hub.
type Subscriber interface {
	Subscribe(draftID uuid.UUID) *events.Client
	Unsubscribe(c *events.Client)
}

// Redirector builds the login hand-off URL. Satisfied by *redirect.LoginRedirector.
type Redirector interface {
	Target(returnTo string) string
}

// Server implements gen.StrictServerInterface for every JSON endpoint.
// Wire it with Register, which mounts the generated router.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	drafts        DraftServicer
	cancellations CancellationServicer
	events        Subscriber
	login         Redirector
	log           *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(drafts DraftServicer, cancellations CancellationServicer, sub Subscriber, login Redirector, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		drafts:        drafts,
		cancellations: cancellations,
		events:        sub,
		login:         login,
		log:           log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Register mounts every route on r. The generated strict server decodes
// requests and encodes typed responses; failures it raises before or after
// a handler runs are answered with the same ErrorResponse body.
func (s *Server) Register(r chi.Router) {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})

	r.Get("/drafts/{draftID}/events", s.DraftEvents)
}

// Handler returns a chi router with every route registered and no middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)
