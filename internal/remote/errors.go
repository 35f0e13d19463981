package remote

import "errors"

var (
	// ErrUnavailable indicates the save endpoint is unreachable.
	ErrUnavailable = errors.New("save endpoint unavailable")

	// ErrRejected indicates the save endpoint refused the snapshot.
	ErrRejected = errors.New("save request rejected")

	// ErrInvalidResponse indicates the endpoint's reply could not be
	// parsed into the expected {id} shape.
	ErrInvalidResponse = errors.New("invalid save response format")
)
