package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice normalizes a raw price string into a numeric value.
//
// Amazon renders prices with the currency symbol prefixed, often with
// a leading label ("Price: $1,234"), the fraction stacked on its own
// line ("$1,234\n56"), and comma grouping in the integer part. The
// symbol must be present; everything before it is discarded. The
// newline and comma normalizations are each optional and their
// absence is not an error. Only a missing symbol or a remainder that
// is not numeric yields ErrUnparsablePrice.
func ParsePrice(raw, currencySymbol string) (float64, error) {
	idx := strings.Index(raw, currencySymbol)
	if idx < 0 {
		return 0, fmt.Errorf("%w: no %q in %q", ErrUnparsablePrice, currencySymbol, raw)
	}
	rest := raw[idx+len(currencySymbol):]

	// Stacked layout: first line is the integer part, second the
	// fraction.
	if before, after, found := strings.Cut(rest, "\n"); found {
		after = strings.TrimSpace(after)
		if cut, _, hasMore := strings.Cut(after, "\n"); hasMore {
			after = cut
		}
		rest = before + "." + after
	}

	rest = strings.ReplaceAll(rest, ",", "")
	rest = strings.TrimSpace(rest)

	value, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsablePrice, raw)
	}
	return value, nil
}
