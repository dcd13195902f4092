package newsapi

import "fmt"

const DefaultBaseURL = "https://newsapi.org/v2"

// RequestConfig describes one fetch. It is a plain value; the With methods
// return modified copies, so a config can be shared freely.
type RequestConfig struct {
	APIKey   string
	Endpoint Endpoint
	Country  Country
}

// NewRequestConfig returns a config for the "everything" endpoint in India.
func NewRequestConfig(apiKey string) RequestConfig {
	return RequestConfig{
		APIKey:   apiKey,
		Endpoint: Everything,
		Country:  India,
	}
}

func (r RequestConfig) WithEndpoint(e Endpoint) RequestConfig {
	r.Endpoint = e
	return r
}

func (r RequestConfig) WithCountry(c Country) RequestConfig {
	r.Country = c
	return r
}

// URL joins base with the endpoint fragment and the country code. The API
// key is never part of the URL.
func (r RequestConfig) URL(base string) (string, error) {
	if !r.Endpoint.valid() {
		return "", fmt.Errorf("invalid endpoint %d", int(r.Endpoint))
	}
	if !r.Country.valid() {
		return "", fmt.Errorf("invalid country %d", int(r.Country))
	}
	return base + r.Endpoint.Fragment() + "&country=" + r.Country.Code(), nil
}
