package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Marksheet parsing ─────────────────────────────────────────────
	ErrFileRequired      ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile   ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge      ErrCode = "FILE_TOO_LARGE"
	ErrExtractionFailed  ErrCode = "EXTRACTION_FAILED"
	ErrParserUnavailable ErrCode = "PARSER_UNAVAILABLE"

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
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type. Please upload a PDF."
	case ErrFileTooLarge:
		return "File size exceeds the allowed limit."
	case ErrExtractionFailed:
		return "Could not extract fields from the document."
	case ErrParserUnavailable:
		return "Network or server error."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
