package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinityLiteral = "Infinity"

// ParseNumber reads the longest numeric prefix of s, the way a browser's
// parseFloat does. Text without a numeric prefix is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}
	if strings.HasPrefix(s[i:], infinityLiteral) {
		if negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		// A bare "." only counts when digits precede it.
		if mantissa > 0 || frac > 0 {
			i = j
			mantissa += frac
		}
	}
	if mantissa == 0 {
		return math.NaN()
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		digits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
		if digits > 0 {
			end = j
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatNumber renders f with the shortest digits that round-trip, switching
// to exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return infinityLiteral
	case math.IsInf(f, -1):
		return "-" + infinityLiteral
	case f == 0:
		return "0"
	case f < 0:
		return "-" + FormatNumber(-f)
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k := len(digits)
	n := e + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}
	return out + "e" + sign + strconv.Itoa(abs(n-1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
