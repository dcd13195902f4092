package newsapi

import (
	"fmt"
	"strings"
)

// Endpoint is a named category of the upstream feed.
type Endpoint int

const (
	Business Endpoint = iota
	Crypto
	Everything
	General
	Health
	Science
	Sports
	Technology
	TopHeadlines
)

type endpointInfo struct {
	name     string
	fragment string
}

var endpointTable = [...]endpointInfo{
	Business:     {"business", "/top-headlines?category=business&pageSize=100"},
	Crypto:       {"crypto", "/top-headlines?q=crypto&pageSize=100"},
	Everything:   {"everything", "/everything?pageSize=100"},
	General:      {"general", "/top-headlines?category=general&pageSize=100"},
	Health:       {"health", "/top-headlines?category=health&pageSize=100"},
	Science:      {"science", "/top-headlines?category=science&pageSize=100"},
	Sports:       {"sports", "/top-headlines?category=sports&pageSize=100"},
	Technology:   {"technology", "/top-headlines?category=technology&pageSize=100"},
	TopHeadlines: {"top-headlines", "/top-headlines?pageSize=100"},
}

// Endpoints returns every endpoint in declaration order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpointTable))
	for i := range endpointTable {
		out[i] = Endpoint(i)
	}
	return out
}

func (e Endpoint) valid() bool {
	return e >= 0 && int(e) < len(endpointTable)
}

// Fragment returns the path and query string appended to the base URL.
func (e Endpoint) Fragment() string {
	if !e.valid() {
		return ""
	}
	return endpointTable[e].fragment
}

func (e Endpoint) String() string {
	if !e.valid() {
		return fmt.Sprintf("endpoint(%d)", int(e))
	}
	return endpointTable[e].name
}

// Set and Type make Endpoint usable as a command line flag value.
func (e *Endpoint) Set(s string) error {
	v, err := ParseEndpoint(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e *Endpoint) Type() string { return "endpoint" }

// Next cycles through the endpoints, wrapping at the end.
func (e Endpoint) Next() Endpoint {
	return Endpoint((int(e) + 1) % len(endpointTable))
}

func (e Endpoint) Prev() Endpoint {
	n := len(endpointTable)
	return Endpoint((int(e) - 1 + n) % n)
}

func ParseEndpoint(s string) (Endpoint, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	if name == "topheadlines" || name == "top" {
		name = "top-headlines"
	}
	for i, info := range endpointTable {
		if info.name == name {
			return Endpoint(i), nil
		}
	}
	return 0, fmt.Errorf("unknown endpoint %q (valid: %s)", s, strings.Join(EndpointNames(), ", "))
}

func EndpointNames() []string {
	names := make([]string, len(endpointTable))
	for i, info := range endpointTable {
		names[i] = info.name
	}
	return names
}

// Country selects the two-letter country code sent with every request.
type Country int

const (
	India Country = iota
	UnitedKingdom
	UnitedStates
)

type countryInfo struct {
	code    string
	name    string
	aliases []string
}

var countryTable = [...]countryInfo{
	India:         {"in", "India", []string{"india", "ind"}},
	UnitedKingdom: {"gb", "United Kingdom", []string{"uk", "united kingdom", "great britain", "britain"}},
	UnitedStates:  {"us", "United States", []string{"usa", "united states", "america"}},
}

func Countries() []Country {
	out := make([]Country, len(countryTable))
	for i := range countryTable {
		out[i] = Country(i)
	}
	return out
}

func (c Country) valid() bool {
	return c >= 0 && int(c) < len(countryTable)
}

// Code returns the lower-case ISO 3166 code used in the query string.
func (c Country) Code() string {
	if !c.valid() {
		return ""
	}
	return countryTable[c].code
}

func (c Country) Name() string {
	if !c.valid() {
		return ""
	}
	return countryTable[c].name
}

func (c Country) String() string {
	if !c.valid() {
		return fmt.Sprintf("country(%d)", int(c))
	}
	return countryTable[c].code
}

func (c *Country) Set(s string) error {
	v, err := ParseCountry(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c *Country) Type() string { return "country" }

func (c Country) Next() Country {
	return Country((int(c) + 1) % len(countryTable))
}

// ParseCountry accepts either the two-letter code or a common name.
func ParseCountry(s string) (Country, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, info := range countryTable {
		if info.code == v {
			return Country(i), nil
		}
		for _, a := range info.aliases {
			if a == v {
				return Country(i), nil
			}
		}
	}
	codes := make([]string, len(countryTable))
	for i, info := range countryTable {
		codes[i] = info.code
	}
	return 0, fmt.Errorf("unknown country %q (valid: %s)", s, strings.Join(codes, ", "))
}
