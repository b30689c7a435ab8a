package sniffer

import (
	"regexp"
	"strings"
)

// UnknownHolder is returned when no holder-name form is recognized.
const UnknownHolder = "Unknown Account Holder"

var (
	// "M/S. TAWAKKAL ..." at the start of a line (HDFC style).
	msLineRe  = regexp.MustCompile(`(?i)^(M/S\.?|MS\.{1,2})\s+[A-Z]`)
	msStripRe = regexp.MustCompile(`(?i)^(M/S\.?|MS\.{1,2})\.?\s*`)

	// Honorific prefixes on the line after "TO:" (JKB style).
	honorificStripRe = regexp.MustCompile(`(?i)^(MS\.\.|M/S\.?|MR\.|MRS\.)\s*`)
)

// AccountHolder extracts the account holder's name from header lines.
// It recognizes the SBI "Account Name :" field, the HDFC "M/S ..." line
// form and the JKB "TO:" block, falling back to UnknownHolder.
func AccountHolder(headerLines []string) string {
	lines := make([]string, 0, len(headerLines))
	for _, l := range headerLines {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	for i, line := range lines {
		upper := strings.ToUpper(line)

		if strings.Contains(upper, "ACCOUNT NAME") {
			if idx := strings.Index(line, ":"); idx >= 0 {
				name := strings.TrimSpace(line[idx+1:])
				if len(name) > 3 {
					// Drop trailing annotations after a comma.
					name, _, _ = strings.Cut(name, ",")
					return strings.TrimSpace(name)
				}
			}
			if i+1 < len(lines) {
				return lines[i+1]
			}
		}

		if msLineRe.MatchString(line) {
			return strings.TrimSpace(msStripRe.ReplaceAllString(line, ""))
		}

		if upper == "TO:" && i+1 < len(lines) {
			return strings.TrimSpace(honorificStripRe.ReplaceAllString(lines[i+1], ""))
		}
	}

	return UnknownHolder
}
