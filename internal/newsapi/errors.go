package newsapi

import "fmt"

const unknownErrorMessage = "Unknown Error"

var errorMessages = map[string]string{
	"apiKeyDisabled":     "Your API key has been disabled.",
	"apiKeyExhausted":    "Your API key has no more requests available.",
	"apiKeyInvalid":      "Your API key hasn't been entered correctly. Double check it and try again.",
	"apiKeyMissing":      "Your API key is missing from the request.",
	"parameterInvalid":   "You've included a parameter in your request which is currently not supported.",
	"parametersMissing":  "Required parameters are missing from the request and it cannot be completed.",
	"rateLimited":        "You have been rate limited. Back off for a while before trying the request again.",
	"sourcesTooMany":     "You have requested too many sources in a single request. Try splitting the request into 2 smaller requests.",
	"sourceDoesNotExist": "You have requested a source which does not exist.",
	"unexpectedError":    "This shouldn't happen, and if it does then it's our fault, not yours. Try the request again shortly.",
}

// ErrorMessage maps a server error code to a readable message. Matching is
// exact and case-sensitive; a nil or unrecognized code yields "Unknown Error".
func ErrorMessage(code *string) string {
	if code == nil {
		return unknownErrorMessage
	}
	if msg, ok := errorMessages[*code]; ok {
		return msg
	}
	return unknownErrorMessage
}

// APIError is returned when the server answers with a status other than "ok".
type APIError struct {
	Code    string // empty when the server sent none
	Message string
}

func newAPIError(code *string) *APIError {
	e := &APIError{Message: ErrorMessage(code)}
	if code != nil {
		e.Code = *code
	}
	return e
}

func (e *APIError) Error() string {
	return "request failed: " + e.Message
}

// TransportError wraps failures below the API: DNS, refused connections,
// timeouts and cancelled contexts.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching articles from %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError means the body was not a valid response envelope.
type ParseError struct {
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing articles (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
