package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the first balanced JSON object out of free-form model
// output. The model is instructed to emit nothing but JSON, but leading or
// trailing commentary still happens; this guards against it. Brace depth is
// tracked with string and escape awareness so braces inside string values
// do not break the match.
func ExtractJSON(response string) (string, error) {
	start := strings.IndexByte(response, '{')
	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(response); i++ {
		c := response[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
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
				candidate := response[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return "", fmt.Errorf("extracted text is not valid JSON")
				}
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object in response")
}
