package rules

import (
	"log"
	"os"
	"sort"
	"strings"
)

// SupportedCurrencies is the configured allow-list of ISO currency codes.
//
// Comparison is case-insensitive; codes are normalized to uppercase on
// construction. Membership fails closed: anything not in the set, including
// the empty string, is unsupported.

type SupportedCurrencies struct {
	allowed map[string]struct{}
}

var defaultCurrencies = []string{"USD", "EUR", "GBP"}

// NewSupportedCurrencies builds the policy from the given codes. Entries that
// are not exactly three letters are discarded; when nothing valid remains the
// default set (USD, EUR, GBP) applies.
func NewSupportedCurrencies(codes []string) SupportedCurrencies {
	allowed := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if !isThreeLetters(code) {
			if code != "" {
				log.Printf("[currency][rules] ignoring invalid currency code %q", code)
			}
			continue
		}
		allowed[code] = struct{}{}
	}
	if len(allowed) == 0 {
		for _, code := range defaultCurrencies {
			allowed[code] = struct{}{}
		}
	}
	return SupportedCurrencies{allowed: allowed}
}

// SupportedCurrenciesFromEnv reads SUPPORTED_CURRENCIES as a comma-separated
// list, falling back to the default set when unset.
func SupportedCurrenciesFromEnv() SupportedCurrencies {
	raw := os.Getenv("SUPPORTED_CURRENCIES")
	if strings.TrimSpace(raw) == "" {
		return NewSupportedCurrencies(nil)
	}
	return NewSupportedCurrencies(strings.Split(raw, ","))
}

func (s SupportedCurrencies) IsSupported(code string) bool {
	if code == "" {
		return false
	}
	_, ok := s.allowed[strings.ToUpper(code)]
	return ok
}

// Allowed returns the configured codes sorted for stable output.
func (s SupportedCurrencies) Allowed() []string {
	codes := make([]string, 0, len(s.allowed))
	for code := range s.allowed {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func isThreeLetters(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
