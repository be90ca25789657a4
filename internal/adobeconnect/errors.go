package adobeconnect

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrMalformedResponse indicates a response body that is not valid XML.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrVendorReported indicates the server answered with a non-ok status.
	// Every *Error matches it.
	ErrVendorReported = errors.New("adobe connect reported an error")

	// ErrUnmappedVendorCode indicates a vendor error with no table entry.
	// It wraps ErrVendorReported; errors with CodeUnknown match both.
	ErrUnmappedVendorCode = fmt.Errorf("unmapped vendor error code: %w", ErrVendorReported)

	// ErrNotLoggedIn indicates a call that needs a session was made without one
	// and no credentials were available to obtain it.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFound indicates a lookup that matched nothing.
	ErrNotFound = errors.New("not found")
)

// Error is one decoded vendor failure.
type Error struct {
	Code ErrorCode
	// Arguments holds the offending field name for "invalid" errors.
	Arguments []string

	// vendor status code and subcode, kept for messages and re-login detection.
	vendorCode    string
	vendorSubcode string
}

// NewError creates an Error with the given code and arguments.
func NewError(code ErrorCode, args ...string) Error {
	return Error{Code: code, Arguments: args}
}

// VendorCode returns the raw status code the server sent, if known.
func (e Error) VendorCode() string { return e.vendorCode }

// VendorSubcode returns the raw subcode the server sent, if known.
func (e Error) VendorSubcode() string { return e.vendorSubcode }

func (e Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.String())
	if len(e.Arguments) > 0 {
		fmt.Fprintf(&b, "(%s)", strings.Join(e.Arguments, ", "))
	}
	if e.Code == CodeUnknown && e.vendorCode != "" {
		fmt.Fprintf(&b, " [code=%s", e.vendorCode)
		if e.vendorSubcode != "" {
			fmt.Fprintf(&b, " subcode=%s", e.vendorSubcode)
		}
		b.WriteString("]")
	}
	return b.String()
}

// Is reports whether target is one of the vendor sentinels this error belongs to.
func (e Error) Is(target error) bool {
	switch target {
	case ErrVendorReported:
		return true
	case ErrUnmappedVendorCode:
		return e.Code == CodeUnknown
	}
	return false
}

// sessionExpired reports whether the server rejected the call for lack of a
// valid session.
func (e Error) sessionExpired() bool {
	return e.vendorCode == statusNoAccess && e.vendorSubcode == subcodeNoLogin
}

// Errors is an ordered collection of vendor failures for one API call.
// The zero value is ready to use. It is not safe for concurrent use.
type Errors struct {
	list []Error
}

// Append adds errs to the collection.
func (e *Errors) Append(errs ...Error) {
	e.list = append(e.list, errs...)
}

// Len returns the number of collected errors.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.list)
}

// HasErrors reports whether anything was collected.
func (e *Errors) HasErrors() bool {
	return e.Len() > 0
}

// All returns a copy of the collected errors in order.
func (e *Errors) All() []Error {
	if e == nil {
		return nil
	}
	out := make([]Error, len(e.list))
	copy(out, e.list)
	return out
}

// Codes returns the codes of the collected errors in order.
func (e *Errors) Codes() []ErrorCode {
	if e == nil {
		return nil
	}
	out := make([]ErrorCode, len(e.list))
	for i, err := range e.list {
		out[i] = err.Code
	}
	return out
}

// codeNames returns the code names of the collected errors in order.
func (e *Errors) codeNames() []string {
	codes := e.Codes()
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}

// Error joins the collected messages.
func (e *Errors) Error() string {
	if e.Len() == 0 {
		return ErrVendorReported.Error()
	}
	msgs := make([]string, len(e.list))
	for i, err := range e.list {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s: %s", ErrVendorReported, strings.Join(msgs, "; "))
}

// Unwrap exposes every collected error, plus ErrVendorReported so that an
// empty collection still matches it.
func (e *Errors) Unwrap() []error {
	out := make([]error, 0, e.Len()+1)
	out = append(out, ErrVendorReported)
	for _, err := range e.list {
		out = append(out, err)
	}
	return out
}

// sessionExpired reports whether any collected error is a no-login rejection.
func (e *Errors) sessionExpired() bool {
	for _, err := range e.list {
		if err.sessionExpired() {
			return true
		}
	}
	return false
}
