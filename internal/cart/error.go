package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")

	// -- Persistence --
	ErrCartRestore = errors.New("failed to restore persisted cart")
	ErrPersistCart = errors.New("failed to persist cart")
)
