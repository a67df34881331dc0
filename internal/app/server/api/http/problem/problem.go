// Package problem turns domain failures into HTTP errors.
package problem

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"banker/internal/domain/failure"
)

// From maps err to a status: a busy workflow is 409, an unreachable backend
// or a failed snapshot 502, everything else the caller can fix is 400.
func From(err error, fallback string) huma.StatusError {
	return huma.NewError(Status(err), failure.Message(err, fallback))
}

func Status(err error) int {
	switch failure.CodeOf(failure.Wrap(err, "")) {
	case failure.CodeInFlight:
		return http.StatusConflict
	case failure.CodeSnapshot, failure.CodeTransport:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}
