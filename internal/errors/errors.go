// Package errors defines the structured error returned by every simulated
// operation, carrying both the HTTP status and the wire-format error body.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks across package boundaries.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid request")
	ErrCardError  = errors.New("card error")
	ErrRateLimit  = errors.New("rate limited")
	ErrAPIFault   = errors.New("api error")
)

// Error is the simulated API error. Its JSON shape matches the upstream
// error envelope's inner object.
type Error struct {
	Status      int    `json:"-"`
	Type        string `json:"type"`
	Code        string `json:"code,omitempty"`
	Message     string `json:"message"`
	Param       string `json:"param,omitempty"`
	DocURL      string `json:"doc_url,omitempty"`
	DeclineCode string `json:"decline_code,omitempty"`
	ChargeID    string `json:"charge,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s): %s", e.Type, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Type, e.Status, e.Message)
}

// Is maps the error onto the package sentinels by status and type.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrCardError:
		return e.Type == "card_error"
	case ErrRateLimit:
		return e.Status == http.StatusTooManyRequests
	case ErrAPIFault:
		return e.Status == http.StatusInternalServerError
	case ErrConflict:
		return e.Code == "resource_already_exists"
	case ErrValidation:
		return e.Status == http.StatusBadRequest && e.Code != "resource_already_exists"
	}
	return false
}

// NotFound reports an unknown resource id in the current account scope.
// param names the request parameter that carried the id.
func NotFound(kind, id, param string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Type:    "invalid_request_error",
		Code:    "resource_missing",
		Message: fmt.Sprintf("No such %s: %s", kind, id),
		Param:   param,
		DocURL:  "https://stripe.com/docs/error-codes/resource-missing",
	}
}

// Conflict reports an attempt to create a resource id that already exists.
// The upstream API uses status 400 for this, not 409.
func Conflict(kind string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Type:    "invalid_request_error",
		Code:    "resource_already_exists",
		Message: fmt.Sprintf("%s already exists.", kind),
		DocURL:  "https://stripe.com/docs/error-codes/resource-already-exists",
	}
}

// Validation reports a missing or invalid parameter.
func Validation(code, message, param string) *Error {
	e := &Error{
		Status:  http.StatusBadRequest,
		Type:    "invalid_request_error",
		Code:    code,
		Message: message,
		Param:   param,
	}
	if code != "" {
		e.DocURL = "https://stripe.com/docs/error-codes/" + dashed(code)
	}
	return e
}

// MissingParam reports an absent required parameter.
func MissingParam(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Type:    "invalid_request_error",
		Code:    "parameter_missing",
		Message: message,
		DocURL:  "https://stripe.com/docs/error-codes/parameter-missing",
	}
}

// RateLimited simulates the transport-level 429.
func RateLimited() *Error {
	return &Error{
		Status:  http.StatusTooManyRequests,
		Type:    "rate_limit_error",
		Code:    "rate_limit",
		Message: "Too many requests in a period of time.",
	}
}

// ServerFault simulates an opaque backend 500.
func ServerFault() *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Type:    "api_error",
		Message: "An unknown error occurred",
	}
}

// CardDeclined builds the 402 raised after a declined charge has been
// stored in its failed state.
func CardDeclined(chargeID, code, declineCode, message, param string) *Error {
	return &Error{
		Status:      http.StatusPaymentRequired,
		Type:        "card_error",
		Code:        code,
		DeclineCode: declineCode,
		Message:     message,
		Param:       param,
		ChargeID:    chargeID,
		DocURL:      "https://stripe.com/docs/error-codes/" + dashed(code),
	}
}

func dashed(code string) string {
	out := make([]byte, len(code))
	for i := 0; i < len(code); i++ {
		if code[i] == '_' {
			out[i] = '-'
		} else {
			out[i] = code[i]
		}
	}
	return string(out)
}
