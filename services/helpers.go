package services

import (
	"strconv"
	"strings"
)

// coerceCount parses a numeric form input. Anything unparsable or negative becomes zero.
func coerceCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// optionalID parses an optional numeric input. Blank or unparsable input yields nil.
func optionalID(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// selectedID parses a team or player selection. ok is false for blank or non-numeric input.
func selectedID(raw string) (int, bool) {
	id := optionalID(raw)
	if id == nil {
		return 0, false
	}
	return *id, true
}

// leadingInt parses the integer a form input starts with, ignoring whatever follows,
// so "45+2" gives 45 and "23'" gives 23. Input without leading digits yields nil.
func leadingInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return nil
	}
	return &n
}
