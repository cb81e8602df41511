package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// pathUUID parses the named chi URL parameter for routes served outside the
// generated router. On failure it writes 400 and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeErrorBody(w, http.StatusBadRequest, "bad_request", name+" is malformed")
		return uuid.Nil, false
	}
	return id, true
}

func toAPIDate(d domain.CalendarDate) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func fromAPIDate(d openapi_types.Date) domain.CalendarDate {
	return domain.DateOf(d.Time)
}

func toAPIDates(dates []domain.CalendarDate) []openapi_types.Date {
	out := make([]openapi_types.Date, len(dates))
	for i, d := range dates {
		out[i] = toAPIDate(d)
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
