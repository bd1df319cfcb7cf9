package scoring

import (
	"fmt"
	"strings"
)

// OptionSeparator delimits answer options stored in a single column.
const OptionSeparator = "|"

// SplitOptions parses a pipe-delimited option list, trimming each entry and
// dropping empty ones.
func SplitOptions(raw string) []string {
	parts := strings.Split(raw, OptionSeparator)
	opts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			opts = append(opts, p)
		}
	}
	return opts
}

func JoinOptions(opts []string) string {
	clean := make([]string, 0, len(opts))
	for _, o := range opts {
		if o = strings.TrimSpace(o); o != "" {
			clean = append(clean, o)
		}
	}
	return strings.Join(clean, OptionSeparator)
}

// OptionAt returns the option at idx, or "" when idx is out of range.
func OptionAt(raw string, idx int) string {
	opts := SplitOptions(raw)
	if idx < 0 || idx >= len(opts) {
		return ""
	}
	return opts[idx]
}

// MinOptions is the fewest choices a question may offer.
const MinOptions = 2

// LikertOptionCount is the number of labels a stress item carries.
const LikertOptionCount = MaxLikert - MinLikert + 1

// CheckChoices reports whether opts can back a question whose answer key is
// the option at index correct.
func CheckChoices(opts []string, correct int) error {
	if len(opts) < MinOptions {
		return fmt.Errorf("%w: need at least %d options, got %d", ErrInvalidOptions, MinOptions, len(opts))
	}
	if correct < 0 || correct >= len(opts) {
		return fmt.Errorf("%w: correct option %d out of range", ErrInvalidOptions, correct)
	}
	return nil
}

// CheckLikertLabels requires one label per Likert response value.
func CheckLikertLabels(opts []string) error {
	if len(opts) != LikertOptionCount {
		return fmt.Errorf("%w: stress items need %d Likert options, got %d", ErrInvalidOptions, LikertOptionCount, len(opts))
	}
	return nil
}
