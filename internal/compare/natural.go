package compare

import (
	"strings"
	"unicode"
)

// compareNatural splits strings into alternating digit and non-digit runs and compares
// digit runs by their numeric value, so that "v2" goes before "v10".
func compareNatural(n *normalizer, a, b string) int {
	ra, rb := splitRuns(a), splitRuns(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		x, y := ra[i], rb[i]
		xd, yd := isDigitRun(x), isDigitRun(y)

		var v int
		switch {
		case xd && yd:
			v = compareNumeric(x, y)
		default:
			v = n.compare(x, y)
		}
		if v != 0 {
			return v
		}
	}

	if v := len(ra) - len(rb); v != 0 {
		return v
	}

	return strings.Compare(a, b)
}

func splitRuns(s string) []string {
	var (
		res   []string
		start int
		digit bool
	)
	for i, r := range s {
		d := unicode.IsDigit(r)
		if i > 0 && d != digit {
			res = append(res, s[start:i])
			start = i
		}
		digit = d
	}
	if start < len(s) {
		res = append(res, s[start:])
	}

	return res
}

func isDigitRun(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}

	return false
}

// compareNumeric compares decimal digit runs of arbitrary length without overflow.
func compareNumeric(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if v := len(ta) - len(tb); v != 0 {
		return v
	}
	if v := strings.Compare(ta, tb); v != 0 {
		return v
	}

	// Same value: fewer leading zeros first.
	return len(a) - len(b)
}
