package handler

import (
	"context"
	"errors"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/handler/gen"
)

// OpenCancellation handles POST /slots/{slotID}/cancellations.
func (s *Server) OpenCancellation(ctx context.Context, req gen.OpenCancellationRequestObject) (gen.OpenCancellationResponseObject, error) {
	c, err := s.cancellations.Open(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.OpenCancellation404JSONResponse(notFoundBody("slot not found")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.OpenCancellation409JSONResponse(conflictBody(err)), nil
		}
		return nil, err
	}

	return gen.OpenCancellation201JSONResponse{
		Body:    cancellationToResponse(c),
		Headers: gen.OpenCancellation201ResponseHeaders{Location: "/cancellations/" + c.ID.String()},
	}, nil
}

// GetCancellation handles GET /cancellations/{confirmationID}.
func (s *Server) GetCancellation(ctx context.Context, req gen.GetCancellationRequestObject) (gen.GetCancellationResponseObject, error) {
	c, err := s.cancellations.Get(ctx, req.ConfirmationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCancellation404JSONResponse(notFoundBody("cancellation not found")), nil
		}
		return nil, err
	}

	return gen.GetCancellation200JSONResponse(cancellationToResponse(c)), nil
}

// UpdateCancellationReason handles PUT /cancellations/{confirmationID}/reason.
// The reason is stored exactly as sent; an empty string is allowed.
func (s *Server) UpdateCancellationReason(ctx context.Context, req gen.UpdateCancellationReasonRequestObject) (gen.UpdateCancellationReasonResponseObject, error) {
	if req.Body == nil || req.Body.Reason == nil {
		return gen.UpdateCancellationReason422JSONResponse(requestBody("reason is required")), nil
	}

	c, err := s.cancellations.UpdateReason(ctx, req.ConfirmationID, *req.Body.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateCancellationReason404JSONResponse(notFoundBody("cancellation not found")), nil
		}
		return nil, err
	}

	return gen.UpdateCancellationReason200JSONResponse(cancellationToResponse(c)), nil
}

// ConfirmCancellation handles POST /cancellations/{confirmationID}/confirm.
func (s *Server) ConfirmCancellation(ctx context.Context, req gen.ConfirmCancellationRequestObject) (gen.ConfirmCancellationResponseObject, error) {
	res, err := s.cancellations.Confirm(ctx, req.ConfirmationID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.ConfirmCancellation404JSONResponse(notFoundBody("cancellation not found")), nil
		case errors.Is(err, domain.ErrReasonRequired):
			return gen.ConfirmCancellation422JSONResponse(reasonRequiredBody()), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.ConfirmCancellation409JSONResponse(conflictBody(err)), nil
		}
		return nil, err
	}

	return gen.ConfirmCancellation200JSONResponse{
		SlotId:           res.SlotID,
		Reason:           res.Reason,
		NotifiedBookings: res.NotifiedBookings,
		CancelledAt:      res.CancelledAt,
	}, nil
}

// DismissCancellation handles DELETE /cancellations/{confirmationID}.
func (s *Server) DismissCancellation(ctx context.Context, req gen.DismissCancellationRequestObject) (gen.DismissCancellationResponseObject, error) {
	if err := s.cancellations.Dismiss(ctx, req.ConfirmationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DismissCancellation404JSONResponse(notFoundBody("cancellation not found")), nil
		}
		return nil, err
	}

	return gen.DismissCancellation204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

func cancellationToResponse(c domain.CancellationSnapshot) gen.Cancellation {
	return gen.Cancellation{
		Id:     c.ID,
		SlotId: c.SlotID,
		State:  c.State,
		Slot: gen.SlotDetails{
			Date:      toAPIDate(c.Slot.Date),
			StartTime: c.Slot.StartTime,
			EndTime:   c.Slot.EndTime,
		},
		Reason:     c.Reason,
		CanConfirm: c.CanConfirm,
	}
}
