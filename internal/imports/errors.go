package imports

import "errors"

var (
	// ErrNotConfigured means no model capability is available (for example a missing API key).
	ErrNotConfigured = errors.New("ai service not configured")
	// ErrNoText means the document could not be decoded or held too little text to parse.
	ErrNoText = errors.New("could not extract text from pdf")
)

const (
	ErrorCodeValidation    = "validation_error"
	ErrorCodeNotConfigured = "not_configured"
	ErrorCodeNoText        = "no_text"
	ErrorCodeTooLarge      = "payload_too_large"
	ErrorCodeInternal      = "internal"
)
