package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeBusinessRule = "BUSINESS_RULE_VIOLATION"
	CodeRateLimited  = "RATE_LIMITED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Kind groups codes into the categories callers render differently.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindStateConflict  Kind = "state_conflict"
	KindBusinessRule   Kind = "business_rule"
	KindInfrastructure Kind = "infrastructure"
	KindAuth           Kind = "auth"
)

// kindForStatus is the default Kind for New; errors whose status does not
// tell their category set Kind with WithKind.
func kindForStatus(status int) Kind {
	switch {
	case status == 400:
		return KindValidation
	case status == 401 || status == 403 || status == 429:
		return KindAuth
	case status == 404:
		return KindNotFound
	case status == 409:
		return KindStateConflict
	case status == 422:
		return KindBusinessRule
	default:
		return KindInfrastructure
	}
}
