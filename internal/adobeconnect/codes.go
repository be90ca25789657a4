package adobeconnect

// ErrorCode is the internal classification of an error reported by the
// Adobe Connect server. The zero value is CodeUnknown.
type ErrorCode int

// Error codes. Every decoded vendor error maps to exactly one of these.
const (
	CodeUnknown ErrorCode = iota
	CodeDuplicateField
	CodeFormatError
	CodeIllegalOperation
	CodeMissingParameter
	CodeNoSuchItem
	CodeRangeError
	CodeNoAccessDenied
)

var codeNames = [...]string{
	CodeUnknown:          "unknown",
	CodeDuplicateField:   "duplicateField",
	CodeFormatError:      "formatError",
	CodeIllegalOperation: "illegalOperation",
	CodeMissingParameter: "missingParameter",
	CodeNoSuchItem:       "noSuchItem",
	CodeRangeError:       "rangeError",
	CodeNoAccessDenied:   "noAccessDenied",
}

// String returns the code name, or "unknown" for out-of-range values.
func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[CodeUnknown]
	}
	return codeNames[c]
}

// Vendor status codes.
const (
	statusOK       = "ok"
	statusInvalid  = "invalid"
	statusNoAccess = "no-access"
)

// Vendor subcode for an expired or missing session, under no-access.
const subcodeNoLogin = "no-login"

// invalidSubcodes maps the subcode of an "invalid" status to its ErrorCode.
var invalidSubcodes = map[string]ErrorCode{
	"duplicate":         CodeDuplicateField,
	"format":            CodeFormatError,
	"illegal-operation": CodeIllegalOperation,
	"missing":           CodeMissingParameter,
	"no-such-item":      CodeNoSuchItem,
	"range":             CodeRangeError,
}

// mapVendorCode resolves a (code, subcode) pair. Only the exact lowercase
// vendor spellings are recognized.
func mapVendorCode(code, subcode string) ErrorCode {
	switch code {
	case statusInvalid:
		if c, ok := invalidSubcodes[subcode]; ok {
			return c
		}
		return CodeUnknown
	case statusNoAccess:
		return CodeNoAccessDenied
	default:
		return CodeUnknown
	}
}
