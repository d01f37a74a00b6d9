package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
)

// maxJSONBodyBytes bounds request bodies. A full batch of MaxBatchItems
// references fits with plenty of room.
const maxJSONBodyBytes = 1 << 20

// pathID reads a positive integer URL parameter. Failures are reported under
// the "path." location so clients can tell them from body errors.
func pathID(r *http.Request, param string) (int64, error) {
	field := dto.PathFieldPrefix + param

	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	switch {
	case err != nil:
		return 0, domain.Invalid(field, "must be a valid integer")
	case id <= 0:
		return 0, domain.Invalid(field, "must be a positive integer")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response", logging.Err(err))
	}
}

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into dst and validates it. On failure the
// problem response has already been written and bind returns false.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "exceeds " + strconv.Itoa(maxJSONBodyBytes) + " bytes"
		}
		dto.WriteErrorResponse(w, r, domain.Invalid(dto.BodyField, msg))
		return false
	}

	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
