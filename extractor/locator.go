package extractor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// jsonBlockPattern matches a fenced code block explicitly tagged as JSON.
// The tag comparison is case-insensitive and the inner payload may span
// multiple lines.
var jsonBlockPattern = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

// span marks the half-open byte range of the located payload inside the
// raw model output. The residual document is computed by excising it.
type span struct {
	start int
	end   int
}

// findJSONBlock locates the JSON payload inside raw model output and
// returns its text together with the excision span, or ("", nil) when no
// payload is found.
//
// A fenced block tagged as JSON is the preferred signal and is returned
// even when its content does not parse; sanitization gets a chance later.
// Without a fence, every opening brace is tried with the brace matcher and
// the first substring that parses as strict JSON wins, so a brace inside a
// truncated object never produces a false match.
func findJSONBlock(raw string) (string, *span) {
	if loc := jsonBlockPattern.FindStringSubmatchIndex(raw); loc != nil {
		return raw[loc[2]:loc[3]], &span{start: loc[0], end: loc[1]}
	}

	start := strings.IndexByte(raw, '{')
	for start != -1 {
		end := matchingBrace(raw, start)
		if end == -1 {
			break
		}
		candidate := raw[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, &span{start: start, end: end + 1}
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next == -1 {
			break
		}
		start = start + 1 + next
	}

	return "", nil
}
