package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// successEnvelope and errorEnvelope are the two branches every operation
// resolves to. Call sites only ever see {success:true, data} or
// {success:false, error}.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// WriteData writes the success branch with a 200 status.
func (r Responder) WriteData(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

// WriteCreated writes the success branch with a 201 status.
func (r Responder) WriteCreated(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusCreated, successEnvelope{Success: true, Data: data})
}

// WriteError converts any error into the failure branch. Unexpected errors
// are logged and masked as a generic internal error; ApiErr values keep
// their status code, kind and message.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Success: false,
			Error:   "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}

	r.writeJSON(w, apiErr.StatusCode, errorEnvelope{
		Success: false,
		Error:   apiErr.Error(),
		Kind:    apiErr.Kind,
		Field:   apiErr.Field,
		Details: apiErr.Details,
	})
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}
