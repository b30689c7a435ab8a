// Package narration shortens raw statement descriptions into noise-free
// display labels for journal rows and voucher imports.
package narration

import (
	"regexp"
	"strings"
)

// MaxLen is the character budget for a shortened narration.
const MaxLen = 40

// importantTypes are transaction-type tokens that are always kept, whatever
// the other filter rules say.
var importantTypes = map[string]struct{}{
	"MTFR": {}, "NEFT": {}, "RTGS": {}, "UPI": {}, "IMPS": {}, "ATM": {},
	"POS": {}, "ECOM": {}, "TRF": {}, "TRANSFER": {}, "CASH": {}, "CHRG": {},
	"CHARGES": {}, "BILL": {}, "INB": {}, "MBK": {},
}

// noiseWords are always dropped: prepositions, Dr/Cr markers and
// reference-number boilerplate.
var noiseWords = map[string]struct{}{
	"TO": {}, "BY": {}, "DR": {}, "CR": {}, "WITHDRAWAL": {}, "DEPOSIT": {},
	"REF": {}, "NO": {}, "DT": {}, "VAL": {}, "BEING": {},
}

// initials are the single letters kept as likely name initials.
var initials = map[string]struct{}{
	"M": {}, "S": {}, "A": {}, "K": {}, "J": {},
}

var (
	// The date column already exists downstream, so a leading date adds
	// nothing to the narration.
	datePrefixRe = regexp.MustCompile(`^\d{2}[-/]\d{2}([-/]\d{2,4})?\s*`)
	separatorRe  = regexp.MustCompile(`[-/:.]`)
)

// Shorten reduces a raw description to a narration of at most MaxLen
// characters, never cutting a token in half unless the token alone exceeds
// the budget.
func Shorten(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.TrimSpace(raw)
	text = datePrefixRe.ReplaceAllString(text, "")
	text = separatorRe.ReplaceAllString(text, " ")

	var kept []string
	for _, token := range strings.Fields(text) {
		if keepToken(token) {
			kept = append(kept, token)
		}
	}

	result := strings.Join(kept, " ")
	if result == "" {
		// Everything was stripped; the separator-normalized text is still
		// better than an empty label.
		result = strings.TrimSpace(text)
	}

	return truncate(result, MaxLen)
}

func keepToken(token string) bool {
	upper := strings.ToUpper(token)

	if _, ok := importantTypes[upper]; ok {
		return true
	}
	if _, ok := noiseWords[upper]; ok {
		return false
	}

	switch {
	case isAlpha(token):
		// Single stray characters are noise unless they look like initials.
		if len(token) == 1 {
			_, ok := initials[upper]
			return ok
		}
		return true
	case isDigits(token):
		// Short numbers are useful ("Sec 14"); long runs are phone or
		// account numbers.
		return len(token) <= 6
	case isAlnum(token) && len(token) > 16:
		// Huge mixed IDs are reference noise; reasonable ones stay.
		return false
	}
	return true
}

// truncate cuts at the last word boundary at or before limit; if the first
// limit characters hold no space, it hard-truncates.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		return cut[:idx]
	}
	return cut
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return s != ""
}
