package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller so login responses cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidArgument marks malformed pagination parameters. The
	// original service performed no validation at all and would silently
	// compute negative offsets; requests outside the contract are rejected
	// here instead.
	ErrInvalidArgument = errors.New("invalid argument")
)
