package httpapi

import (
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/render"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

type errResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, httpStatus(err))
	render.JSON(w, r, errResponse{Error: err.Error()})
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errResponse{Error: err.Error()})
}

// httpStatus maps domain sentinel errors onto response codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, gerr.ErrOrderNotFound),
		errors.Is(err, gerr.ErrMenuItemNotFound),
		errors.Is(err, gerr.ErrCustomerNotFound),
		errors.Is(err, gerr.ErrAdminNotFound):
		return http.StatusNotFound
	case errors.Is(err, gerr.ErrItemUnavailable),
		errors.Is(err, gerr.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, gerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, gerr.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// remoteIP returns the client address without the port. RealIP middleware
// has already unwrapped proxy headers into RemoteAddr.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
