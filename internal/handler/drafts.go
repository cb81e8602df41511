package handler

import (
	"context"
	"errors"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/handler/gen"
)

// GetAvailability handles GET /listings/{listingID}/availability.
func (s *Server) GetAvailability(ctx context.Context, req gen.GetAvailabilityRequestObject) (gen.GetAvailabilityResponseObject, error) {
	idx, err := s.drafts.AvailableDates(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetAvailability404JSONResponse(notFoundBody("listing not found")), nil
		}
		return nil, err
	}

	return gen.GetAvailability200JSONResponse{ListingId: req.ListingID, Dates: toAPIDates(idx.Dates())}, nil
}

// CreateDraft handles POST /drafts.
func (s *Server) CreateDraft(ctx context.Context, req gen.CreateDraftRequestObject) (gen.CreateDraftResponseObject, error) {
	if req.Body == nil {
		return gen.CreateDraft422JSONResponse(requestBody("request body is required")), nil
	}

	draft, err := s.drafts.Create(ctx, req.Body.ListingId, domain.DraftMode(req.Body.Mode))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateDraft422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateDraft201JSONResponse{
		Body:    draftToResponse(draft),
		Headers: gen.CreateDraft201ResponseHeaders{Location: "/drafts/" + draft.ID.String()},
	}, nil
}

// GetDraft handles GET /drafts/{draftID}.
func (s *Server) GetDraft(ctx context.Context, req gen.GetDraftRequestObject) (gen.GetDraftResponseObject, error) {
	draft, err := s.drafts.Get(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetDraft404JSONResponse(notFoundBody("draft not found")), nil
		}
		return nil, err
	}

	return gen.GetDraft200JSONResponse(draftToResponse(draft)), nil
}

// SelectDate handles PUT /drafts/{draftID}/date.
func (s *Server) SelectDate(ctx context.Context, req gen.SelectDateRequestObject) (gen.SelectDateResponseObject, error) {
	date, err := requestToDate(req.Body)
	if err != nil {
		return gen.SelectDate422JSONResponse(requestBody(err.Error())), nil
	}

	draft, err := s.drafts.SelectDate(ctx, req.DraftID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SelectDate404JSONResponse(notFoundBody("draft not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.SelectDate422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.SelectDate200JSONResponse(draftToResponse(draft)), nil
}

// ToggleDate handles POST /drafts/{draftID}/dates/toggle.
func (s *Server) ToggleDate(ctx context.Context, req gen.ToggleDateRequestObject) (gen.ToggleDateResponseObject, error) {
	date, err := requestToDate(req.Body)
	if err != nil {
		return gen.ToggleDate422JSONResponse(requestBody(err.Error())), nil
	}

	draft, err := s.drafts.ToggleDate(ctx, req.DraftID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ToggleDate404JSONResponse(notFoundBody("draft not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.ToggleDate422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.ToggleDate200JSONResponse(draftToResponse(draft)), nil
}

// AddVehicle handles POST /drafts/{draftID}/vehicles.
func (s *Server) AddVehicle(ctx context.Context, req gen.AddVehicleRequestObject) (gen.AddVehicleResponseObject, error) {
	if req.Body == nil {
		return gen.AddVehicle422JSONResponse(requestBody("request body is required")), nil
	}

	draft, err := s.drafts.AddVehicle(ctx, req.DraftID, domain.VehicleRecord{
		Type:  domain.VehicleType(deref(req.Body.Type)),
		Plate: deref(req.Body.Plate),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.AddVehicle404JSONResponse(notFoundBody("draft not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.AddVehicle422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.AddVehicle201JSONResponse(draftToResponse(draft)), nil
}

// RemoveVehicle handles DELETE /drafts/{draftID}/vehicles/{vehicleID}.
func (s *Server) RemoveVehicle(ctx context.Context, req gen.RemoveVehicleRequestObject) (gen.RemoveVehicleResponseObject, error) {
	draft, err := s.drafts.RemoveVehicle(ctx, req.DraftID, req.VehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RemoveVehicle404JSONResponse(notFoundBody("draft or vehicle not found")), nil
		}
		return nil, err
	}

	return gen.RemoveVehicle200JSONResponse(draftToResponse(draft)), nil
}

// SetVehicleField handles PATCH /drafts/{draftID}/vehicles/{vehicleID}.
func (s *Server) SetVehicleField(ctx context.Context, req gen.SetVehicleFieldRequestObject) (gen.SetVehicleFieldResponseObject, error) {
	if req.Body == nil {
		return gen.SetVehicleField422JSONResponse(requestBody("request body is required")), nil
	}

	draft, err := s.drafts.SetVehicleField(ctx, req.DraftID, req.VehicleID, req.Body.Field, req.Body.Value)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SetVehicleField404JSONResponse(notFoundBody("draft or vehicle not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.SetVehicleField422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.SetVehicleField200JSONResponse(draftToResponse(draft)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToDate reads the required date of a DateRequest body.
func requestToDate(body *gen.DateRequest) (domain.CalendarDate, error) {
	if body == nil {
		return domain.CalendarDate{}, errors.New("request body is required")
	}
	if body.Date.IsZero() {
		return domain.CalendarDate{}, errors.New("date is required")
	}
	return fromAPIDate(body.Date), nil
}

// draftToResponse converts a domain.DraftSnapshot to its API representation.
func draftToResponse(d domain.DraftSnapshot) gen.Draft {
	out := gen.Draft{
		Id:            d.ID,
		ListingId:     d.ListingID,
		Mode:          gen.DraftMode(d.Mode),
		SelectedDates: toAPIDates(d.SelectedDates),
		Vehicles:      make([]gen.Vehicle, len(d.Vehicles)),
		UpdatedAt:     d.UpdatedAt,
	}
	if d.SelectedDate != nil {
		sd := toAPIDate(*d.SelectedDate)
		out.SelectedDate = &sd
	}
	for i, v := range d.Vehicles {
		out.Vehicles[i] = gen.Vehicle{Id: v.ID, Type: string(v.Type), Plate: v.Plate}
	}
	return out
}
