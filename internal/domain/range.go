package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive span of article numbers. An open range has no
// upper bound.
type Range struct {
	Low  int64
	High int64
	Open bool
}

func Single(n int64) Range {
	return Range{Low: n, High: n}
}

func Between(low, high int64) Range {
	return Range{Low: low, High: high}
}

func From(low int64) Range {
	return Range{Low: low, Open: true}
}

// All covers every article in a group.
func All() Range {
	return From(0)
}

func (r Range) Contains(n int64) bool {
	if n < r.Low {
		return false
	}
	return r.Open || n <= r.High
}

func (r Range) String() string {
	switch {
	case r.Open:
		return fmt.Sprintf("%d-", r.Low)
	case r.Low == r.High:
		return strconv.FormatInt(r.Low, 10)
	default:
		return fmt.Sprintf("%d-%d", r.Low, r.High)
	}
}

// ParseRange accepts the NNTP forms "n", "n-" and "n-m".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lowStr, highStr, isRange := strings.Cut(s, "-")

	low, err := strconv.ParseInt(lowStr, 10, 64)
	if err != nil || low < 0 {
		return Range{}, fmt.Errorf("invalid range %q", s)
	}
	if !isRange {
		return Single(low), nil
	}
	if highStr == "" {
		return From(low), nil
	}

	high, err := strconv.ParseInt(highStr, 10, 64)
	if err != nil || high < 0 {
		return Range{}, fmt.Errorf("invalid range %q", s)
	}
	return Between(low, high), nil
}
