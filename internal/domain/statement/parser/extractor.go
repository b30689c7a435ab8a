// Package parser turns raw statement page text into normalized transactions.
// extractor.go groups page lines into per-row blocks; normalizer.go extracts
// amounts, balances and money-flow direction from each block.
package parser

import (
	"regexp"
	"strings"
)

// OpeningDate marks the special block holding the statement's starting balance.
const OpeningDate = "OPENING"

// datePrefixRe matches DD-MM-YYYY, DD/MM/YYYY and DD/MM/YY row starts.
var datePrefixRe = regexp.MustCompile(`^\d{2}[-/]\d{2}[-/]\d{2,4}`)

// openingMarkers start the opening-balance block. Matched as upper-cased
// substrings, covering JKB "B/F" and SBI "Balance as on" layouts.
var openingMarkers = []string{"B/F", "BROUGHT FORWARD", "BALANCE AS ON", "OPENING BALANCE"}

// junkFragments is known footer/disclaimer text to ignore. The disclaimer is
// split across multiple lines by the text extractor, so each fragment is
// listed separately.
var junkFragments = []string{
	"unless the constituent notifies the bank",
	"immediately of any discrepancy found",
	"by him in this statement of account",
	"it will be taken that he has found",
	"the account correct",
}

// RawBlock is one physical statement row: the date prefix plus all wrapped
// continuation lines joined with spaces. Blocks with Date == OpeningDate
// carry the starting balance and never become transactions.
type RawBlock struct {
	Date string
	Text string
}

// IsOpening reports whether the block is the opening-balance row.
func (b RawBlock) IsOpening() bool {
	return b.Date == OpeningDate
}

// ExtractBlocks groups ordered page lines into raw transaction blocks.
// A statement with no date-prefixed lines yields an empty slice, not an
// error; downstream stages handle the empty sequence.
func ExtractBlocks(lines []string) []RawBlock {
	var blocks []RawBlock
	var current *RawBlock

	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for _, line := range lines {
		clean := cleanLine(line)
		if clean == "" {
			continue
		}

		if isJunk(clean) {
			continue
		}

		upper := strings.ToUpper(clean)
		if strings.Contains(upper, "TOTAL") {
			continue
		}

		if hasOpeningMarker(upper) {
			// Subsequent lines (such as the amount) append to this block
			// until the next dated row is found.
			flush()
			current = &RawBlock{Date: OpeningDate, Text: clean}
			continue
		}

		if prefix := datePrefixRe.FindString(clean); prefix != "" {
			flush()
			current = &RawBlock{
				Date: prefix,
				Text: strings.TrimSpace(clean[len(prefix):]),
			}
			continue
		}

		// Wrapped continuation line.
		if current != nil {
			current.Text += " " + clean
		}
	}

	flush()
	return blocks
}

// cleanLine strips CSV artifacts left behind by text extraction.
func cleanLine(line string) string {
	line = strings.ReplaceAll(line, "','", " ")
	line = strings.ReplaceAll(line, `"`, "")
	return strings.TrimSpace(line)
}

func isJunk(clean string) bool {
	lower := strings.ToLower(clean)
	for _, frag := range junkFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

func hasOpeningMarker(upper string) bool {
	for _, marker := range openingMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
