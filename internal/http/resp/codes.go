package resp

// Machine-readable codes carried in every error body.
const (
	CodeBadRequest    = "bad_request"
	CodeValidation    = "validation_error"
	CodeUnauthorized  = "unauthorized"
	CodeRateLimited   = "rate_limited"
	CodeInternalError = "internal_error"
)

const (
	MessageSubmitted    = "Feedback received. Confirmation email sent."
	MessageUnauthorized = "Invalid admin token."
)
