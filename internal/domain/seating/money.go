package seating

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in the event currency's minor unit (e.g. haléře for
// CZK). The gateway serves prices as plain JSON numbers with at most two
// decimal places; keeping them as integers avoids floating rounding when
// summing cart totals.
type Money int64

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	parsed, err := ParseMoney(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMoney converts a decimal string to minor units. Negative amounts and
// more than two fractional digits are rejected.
func ParseMoney(s string) (Money, error) {
	whole, frac, _ := strings.Cut(s, ".")

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if major < 0 || strings.HasPrefix(whole, "-") {
		return 0, fmt.Errorf("negative amount %q", s)
	}

	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	minor := int64(0)
	if frac != "" {
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || minor < 0 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			minor *= 10
		}
	}

	return Money(major*100 + minor), nil
}
