package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrURLMissing indicates no server URL is configured.
	ErrURLMissing = errors.New("server url not set (config key url or ADOBECONNECT_URL)")

	// ErrCredentialsMissing indicates the login or password is not configured.
	ErrCredentialsMissing = errors.New("credentials not set (config key login or ADOBECONNECT_LOGIN, and ADOBECONNECT_PASSWORD)")

	// ErrFileNotFound indicates the specified input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidTime indicates a date/time flag could not be parsed.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidDuration indicates a duration flag could not be parsed or is not positive.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrInvalidPermission indicates an unknown permission name.
	ErrInvalidPermission = errors.New("invalid permission")
)
