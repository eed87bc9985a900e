package llm

import (
	"encoding/json"
	"fmt"
)

// ExtractJSON pulls the first balanced top-level JSON object out of text
// that may surround it with prose or markdown fences. Braces inside string
// literals are ignored. Returns an error if no balanced object is found.
//
// Call sites use this as a repair step after a direct json.Unmarshal of the
// raw response fails.
func ExtractJSON(text string) (json.RawMessage, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					candidate := text[start : i+1]
					if json.Valid([]byte(candidate)) {
						return json.RawMessage(candidate), nil
					}
					// Keep scanning; a later object may be well-formed.
					start = -1
				}
			}
		}
	}

	return nil, fmt.Errorf("no JSON object found in response text")
}
