package profile

import "errors"

// Rejections. A rejected operation leaves the profile unchanged.
var (
	ErrInsufficientFunds = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrUnknownItem       = errors.New("unknown catalog item")
	ErrNotOwned          = errors.New("item not owned")
	ErrNotAvatar         = errors.New("item is not an avatar")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidName       = errors.New("name must be 1-24 characters")
)
