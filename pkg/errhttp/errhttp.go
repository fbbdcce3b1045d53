// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shareit/pkg/httpx"
	bookingdomain "github.com/ghuser/shareit/services/booking/domain"
	itemdomain "github.com/ghuser/shareit/services/item/domain"
	requestdomain "github.com/ghuser/shareit/services/request/domain"
	userdomain "github.com/ghuser/shareit/services/user/domain"
)

// WriteError maps err to an HTTP status code and writes the standard
// {error, message, timestamp} response. Uses errors.Is() so wrapped sentinel
// errors are matched correctly. Defaults to 500 for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.Error(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, userdomain.ErrUserNotFound),
		errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, bookingdomain.ErrBookingNotFound),
		errors.Is(err, requestdomain.ErrRequestNotFound):
		return http.StatusNotFound // 404

	// Self-booking is deliberately not-found-shaped: probing your own
	// listing reveals nothing.
	case errors.Is(err, bookingdomain.ErrOwnItemBooking):
		return http.StatusNotFound // 404

	case errors.Is(err, userdomain.ErrEmailAlreadyExists),
		errors.Is(err, itemdomain.ErrItemAlreadyExists):
		return http.StatusConflict // 409

	case errors.Is(err, itemdomain.ErrItemForbidden),
		errors.Is(err, bookingdomain.ErrBookingAccessDenied):
		return http.StatusForbidden // 403

	case errors.Is(err, bookingdomain.ErrItemUnavailable),
		errors.Is(err, bookingdomain.ErrAlreadyDecided),
		errors.Is(err, bookingdomain.ErrUnsupportedState),
		errors.Is(err, itemdomain.ErrCommentNotAllowed):
		return http.StatusBadRequest // 400

	default:
		return http.StatusInternalServerError // 500
	}
}
