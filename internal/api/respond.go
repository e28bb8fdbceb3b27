package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	apierr "github.com/paysim/paysim/internal/errors"
)

type errorEnvelope struct {
	Error *apierr.Error `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError maps any error onto the wire envelope. Errors that are not
// the structured kind become an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Msg("Unstructured error reached the transport")
		apiErr = apierr.ServerFault()
	}
	writeJSON(w, apiErr.Status, errorEnvelope{Error: apiErr})
}
