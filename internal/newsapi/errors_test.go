package newsapi

import "testing"

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"apiKeyDisabled", "Your API key has been disabled."},
		{"apiKeyExhausted", "Your API key has no more requests available."},
		{"apiKeyInvalid", "Your API key hasn't been entered correctly. Double check it and try again."},
		{"apiKeyMissing", "Your API key is missing from the request."},
		{"parameterInvalid", "You've included a parameter in your request which is currently not supported."},
		{"parametersMissing", "Required parameters are missing from the request and it cannot be completed."},
		{"rateLimited", "You have been rate limited. Back off for a while before trying the request again."},
		{"sourcesTooMany", "You have requested too many sources in a single request. Try splitting the request into 2 smaller requests."},
		{"sourceDoesNotExist", "You have requested a source which does not exist."},
		{"unexpectedError", "This shouldn't happen, and if it does then it's our fault, not yours. Try the request again shortly."},
		{"RATELIMITED", "Unknown Error"},
		{"somethingNew", "Unknown Error"},
		{"", "Unknown Error"},
	}
	for _, tt := range tests {
		code := tt.code
		if got := ErrorMessage(&code); got != tt.want {
			t.Errorf("ErrorMessage(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorMessageNil(t *testing.T) {
	if got := ErrorMessage(nil); got != "Unknown Error" {
		t.Errorf("ErrorMessage(nil) = %q, want %q", got, "Unknown Error")
	}
}

func TestAPIErrorKeepsCode(t *testing.T) {
	code := "apiKeyMissing"
	e := newAPIError(&code)
	if e.Code != code {
		t.Errorf("expected code %q, got %q", code, e.Code)
	}
	if e.Error() != "request failed: Your API key is missing from the request." {
		t.Errorf("unexpected error text: %q", e.Error())
	}

	e = newAPIError(nil)
	if e.Code != "" || e.Message != "Unknown Error" {
		t.Errorf("unexpected error for nil code: %+v", e)
	}
}
