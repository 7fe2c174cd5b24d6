package synthesis

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// scanState tracks where the scanner is relative to JSON string syntax.
// Braces only count toward balance in stateOutside.
type scanState int

const (
	stateOutside scanState = iota
	stateInside
	stateEscaped
)

var (
	errNoOpeningBrace = errors.New("no JSON object found (missing '{')")
	errUnbalanced     = errors.New("no matching closing '}' for JSON block")
)

var (
	codeFenceRe   = regexp.MustCompile("(?s)```(?:json)?\\s*")
	backtickValRe = regexp.MustCompile(":\\s*`([^`]*)`")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSONBlock extracts the outermost balanced JSON object from model
// output and applies repair heuristics. Models routinely emit prose
// before and after the JSON, so naive first-'{' / last-'}' slicing is not
// enough: the scanner tracks string and escape state explicitly so braces
// inside quoted values never corrupt the bracket count.
func ExtractJSONBlock(text string) (string, error) {
	// Code fences carry no information once the scanner anchors on the
	// first brace, but stripping them first keeps stray backticks from
	// confusing the value-repair pass below.
	text = codeFenceRe.ReplaceAllString(text, "")

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", errNoOpeningBrace
	}

	state := stateOutside
	balance := 0
	end := -1

scan:
	for i := start; i < len(text); i++ {
		c := text[i]
		switch state {
		case stateEscaped:
			state = stateInside
		case stateInside:
			switch c {
			case '\\':
				state = stateEscaped
			case '"':
				state = stateOutside
			}
		case stateOutside:
			switch c {
			case '"':
				state = stateInside
			case '{':
				balance++
			case '}':
				balance--
				if balance == 0 {
					end = i
					break scan
				}
			}
		}
	}

	if end == -1 {
		return "", errUnbalanced
	}

	return repairJSON(text[start : end+1]), nil
}

// repairJSON fixes the malformations local models actually produce:
// backtick-quoted values (converted to properly escaped JSON strings)
// and trailing commas before closing brackets.
func repairJSON(candidate string) string {
	candidate = backtickValRe.ReplaceAllStringFunc(candidate, func(m string) string {
		inner := backtickValRe.FindStringSubmatch(m)[1]
		quoted, err := json.Marshal(inner)
		if err != nil {
			return m
		}
		return ": " + string(quoted)
	})

	candidate = trailingComma.ReplaceAllString(candidate, "$1")

	return candidate
}
