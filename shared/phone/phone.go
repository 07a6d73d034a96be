package phone

import "strings"

// Format groups a UK phone number for display. The result depends only on
// the digits in the input, never on locale state.
//
// Mobile numbers (07...) up to 11 digits are grouped 5-3-3, London
// landlines (02...) 3-4-4. Anything else longer than five digits gets the
// generic 5-3-3 grouping over its first eleven digits, with the remainder
// appended untouched.
func Format(value string) string {
	cleaned := digits(value)

	switch {
	case strings.HasPrefix(cleaned, "07") && len(cleaned) <= 11:
		return group(cleaned, 5, 3, 3)
	case strings.HasPrefix(cleaned, "02") && len(cleaned) <= 11:
		return group(cleaned, 3, 4, 4)
	case len(cleaned) > 5:
		head := cleaned
		tail := ""

		if len(cleaned) > 11 {
			head = cleaned[:11]
			tail = cleaned[11:]
		}

		return group(head, 5, 3, 3) + tail
	default:
		return cleaned
	}
}

func digits(value string) string {
	var b strings.Builder

	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func group(value string, sizes ...int) string {
	chunks := []string{}
	rest := value

	for _, size := range sizes {
		if rest == "" {
			break
		}

		if len(rest) <= size {
			chunks = append(chunks, rest)
			rest = ""

			break
		}

		chunks = append(chunks, rest[:size])
		rest = rest[size:]
	}

	return strings.Join(chunks, " ")
}
