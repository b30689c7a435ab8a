// Package sniffer identifies the issuing bank and the account holder from
// statement header text. Identification is best-effort: every answer comes
// with a confidence score so downstream consumers can flag low-trust
// results without halting a batch.
package sniffer

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Bank is the statement-issuer tag. Classification and voucher logic never
// depend on it; it only selects display names and confidence.
type Bank string

const (
	BankHDFC    Bank = "HDFC"
	BankSBI     Bank = "SBI"
	BankJKB     Bank = "JKB"
	BankUnknown Bank = "UNKNOWN"
)

// Confidence levels for bank identification.
const (
	ConfidenceExact   = 1.0
	ConfidenceFuzzy   = 0.6
	ConfidenceUnknown = 0.3
)

// fingerprints are upper-cased substrings that identify each bank's
// statement header.
var fingerprints = map[Bank][]string{
	BankHDFC: {"HDFC BANK", "HDFC BANK LIMITED"},
	BankSBI:  {"STATE BANK OF INDIA", "SBI"},
	BankJKB:  {"JAMMU AND KASHMIR BANK", "J&K BANK", "JAMMU & KASHMIR BANK"},
}

// Detector matches bank fingerprints against header text in a single
// Aho-Corasick pass, with a fuzzy fallback for OCR-damaged headers.
type Detector struct {
	matcher  *ahocorasick.Matcher
	patterns []string
	banks    []Bank
}

// NewDetector builds a detector over the known bank fingerprints.
func NewDetector() *Detector {
	d := &Detector{}
	for bank, patterns := range fingerprints {
		for _, p := range patterns {
			d.patterns = append(d.patterns, p)
			d.banks = append(d.banks, bank)
		}
	}
	d.matcher = ahocorasick.NewStringMatcher(d.patterns)
	return d
}

// Detect identifies the bank from header lines (typically the first two
// pages). Exact fingerprint hits score ConfidenceExact; fuzzy hits on long
// fingerprints score ConfidenceFuzzy; no hit returns BankUnknown with
// ConfidenceUnknown, which routes the statement down the generic path.
func (d *Detector) Detect(headerLines []string) (Bank, float64) {
	text := strings.ToUpper(strings.Join(headerLines, " "))
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return BankUnknown, ConfidenceUnknown
	}

	if hits := d.matcher.Match([]byte(text)); len(hits) > 0 {
		return d.banks[hits[0]], ConfidenceExact
	}

	for i, pattern := range d.patterns {
		if fuzzyHit(text, pattern) {
			return d.banks[i], ConfidenceFuzzy
		}
	}

	return BankUnknown, ConfidenceUnknown
}

// fuzzyHit slides a window of the fingerprint's word count across the
// header and accepts edit distance <= 2, catching OCR damage like
// "HDFC 8ANK". Short fingerprints are skipped: two edits on "SBI" would
// match nearly anything.
func fuzzyHit(text, pattern string) bool {
	if len(pattern) < 8 {
		return false
	}
	words := strings.Fields(text)
	span := len(strings.Fields(pattern))
	for i := 0; i+span <= len(words); i++ {
		window := strings.Join(words[i:i+span], " ")
		if fuzzy.LevenshteinDistance(window, pattern) <= 2 {
			return true
		}
	}
	return false
}
