package llm

import "errors"

var (
	// ErrMissingAPIKey indicates OPENAI_API_KEY is not set. This is the one
	// fatal configuration error; nothing may run without the credential.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

	// ErrUnavailable indicates the completion service could not be reached.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrInvalidOutput indicates the completion text could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid completion output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("completion retry attempts exhausted")
)
