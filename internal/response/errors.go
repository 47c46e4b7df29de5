package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Export ────────────────────────────────────────────────────────
	ErrInvalidExportFormat ErrCode = "INVALID_EXPORT_FORMAT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload could not be read."
	case ErrInvalidExportFormat:
		return "Invalid format. Use: markdown, csv, json"
	case ErrNotFound:
		return "Resource not found."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
