package roster

import "errors"

var (
	// ErrNetworkFailure wraps every failed call to the employees API
	ErrNetworkFailure = errors.New("employees API request failed")

	ErrRemovalNotConfirmed = errors.New("employee removal was not confirmed")
)
