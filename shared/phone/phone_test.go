package phone_test

import (
	"testing"

	"sufra/shared/phone"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full UK mobile",
			input:    "07123456789",
			expected: "07123 456 789",
		},
		{
			name:     "mobile with spaces and punctuation",
			input:    "07123 456-789",
			expected: "07123 456 789",
		},
		{
			name:     "partial mobile while typing",
			input:    "0712345",
			expected: "07123 45",
		},
		{
			name:     "london landline",
			input:    "02012345678",
			expected: "020 1234 5678",
		},
		{
			name:     "partial landline",
			input:    "0201234",
			expected: "020 1234",
		},
		{
			name:     "generic long number",
			input:    "+441234567890",
			expected: "44123 456 7890",
		},
		{
			name:     "overlong number keeps remainder",
			input:    "123456789012345",
			expected: "12345 678 9012345",
		},
		{
			name:     "short input unchanged",
			input:    "0712",
			expected: "0712",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "letters stripped",
			input:    "call 07123456789 now",
			expected: "07123 456 789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := phone.Format(tt.input)
			if result != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatDeterministic(t *testing.T) {
	// Formatting an already formatted number must be a fixed point.
	first := phone.Format("07123456789")
	second := phone.Format(first)

	if first != second {
		t.Errorf("Format is not idempotent: %q != %q", first, second)
	}
}
