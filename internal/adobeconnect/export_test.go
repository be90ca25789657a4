package adobeconnect

// Exports for black-box tests.
var (
	DecodeStatus   = decodeStatus
	MapVendorCode  = mapVendorCode
	ParseCommon    = parseCommonInfo
	FormatDate     = formatDate
	SessionCookie  = sessionCookie
	PublicAccessID = publicAccessPrincipal
)
