package extractor

// matchingBrace returns the index of the closing brace that balances the
// opening brace at start, or -1 when the text ends before depth returns to
// zero. Braces inside string literals are ignored; escape sequences are
// honored so an escaped quote does not terminate the string state.
func matchingBrace(text string, start int) int {
	depth := 0
	inString := false
	escape := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escape {
			escape = false
			continue
		}
		if c == '\\' {
			escape = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
