package extractor

import (
	"regexp"
	"strings"
)

// trailingCommaPattern removes commas that immediately precede a closing
// bracket or brace. It is applied to the whole candidate, including string
// values that happen to contain a comma-bracket sequence; this mirrors the
// long-standing behavior of the extraction pipeline and is pinned by a test.
var trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)

// pythonLiterals maps relaxed literal spellings occasionally produced by
// models onto their strict JSON equivalents.
var pythonLiterals = map[string]string{
	"True":  "true",
	"False": "false",
	"None":  "null",
}

// stripComments removes // line comments and /* */ block comments that
// occur outside string literals. Content inside correctly delimited
// strings is never altered.
func stripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escape := false

	for i := 0; i < len(text); {
		c := text[i]

		if escape {
			b.WriteByte(c)
			escape = false
			i++
			continue
		}
		if c == '\\' {
			escape = true
			b.WriteByte(c)
			i++
			continue
		}
		if c == '"' {
			inString = !inString
			b.WriteByte(c)
			i++
			continue
		}

		if !inString && c == '/' && i+1 < len(text) {
			switch text[i+1] {
			case '/':
				i += 2
				for i < len(text) && text[i] != '\n' && text[i] != '\r' {
					i++
				}
				continue
			case '*':
				i += 2
				for i+1 < len(text) {
					if text[i] == '*' && text[i+1] == '/' {
						i += 2
						break
					}
					i++
				}
				continue
			}
		}

		b.WriteByte(c)
		i++
	}

	return b.String()
}

// stripTrailingCommas drops commas that directly precede a closing ] or }
func stripTrailingCommas(text string) string {
	return trailingCommaPattern.ReplaceAllString(text, "$1")
}

// sanitize removes the issues models most commonly introduce in JSON
// payloads: comments outside strings and trailing commas.
func sanitize(text string) string {
	return stripTrailingCommas(stripComments(text))
}

// replaceBareLiterals rewrites bare (unquoted) literal tokens according to
// replacements. A token is only replaced when it sits outside any string
// literal and is not part of a larger identifier. Both double- and
// single-quoted strings are respected, since relaxed output may use either.
func replaceBareLiterals(text string, replacements map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escape := false
	var delimiter byte

	isWordByte := func(c byte) bool {
		return c == '_' ||
			(c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z')
	}

	for i := 0; i < len(text); {
		c := text[i]

		if inString {
			b.WriteByte(c)
			if escape {
				escape = false
			} else if c == '\\' {
				escape = true
			} else if c == delimiter {
				inString = false
			}
			i++
			continue
		}

		if c == '"' || c == '\'' {
			inString = true
			delimiter = c
			b.WriteByte(c)
			i++
			continue
		}

		replaced := false
		for literal, replacement := range replacements {
			if !strings.HasPrefix(text[i:], literal) {
				continue
			}
			end := i + len(literal)
			if i > 0 && isWordByte(text[i-1]) {
				continue
			}
			if end < len(text) && isWordByte(text[end]) {
				continue
			}
			b.WriteString(replacement)
			i = end
			replaced = true
			break
		}
		if replaced {
			continue
		}

		b.WriteByte(c)
		i++
	}

	return b.String()
}

// normalizeLiterals is the most aggressive sanitizer stage: it builds on
// the comment/trailing-comma cleanup and then rewrites Python-style bare
// literals (True/False/None) into strict JSON spellings.
func normalizeLiterals(text string) string {
	return replaceBareLiterals(sanitize(text), pythonLiterals)
}
