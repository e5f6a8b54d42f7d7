package gerr

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrItemUnavailable  = errors.New("menu item not available")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAdminNotFound    = errors.New("admin not found")

	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	ErrUnauthorized = errors.New("not authenticated")
	ErrValidation   = errors.New("validation failed")

	ErrNotifyAPILimitReached = errors.New("notification api limit reached")
)
