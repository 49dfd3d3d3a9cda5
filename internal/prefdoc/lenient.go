package prefdoc

import (
	"math"
	"strconv"
)

// The document values are parsed the way the console firmware always parsed
// them: the longest numeric prefix wins and anything unparsable reads as zero.
// A damaged value therefore never blocks the rest of the document; the
// sanitizer deals with whatever comes out. strconv has no prefix mode, so the
// prefix is cut here and handed to strconv.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// numericPrefix returns the leading number of s, or "" if there is none.
func numericPrefix(s string, float bool) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if float {
		if i < len(s) && s[i] == '.' {
			j := i + 1
			frac := 0
			for j < len(s) && isDigit(s[j]) {
				j++
				frac++
			}
			if digits+frac > 0 {
				i = j
				digits += frac
			}
		}

		if digits > 0 && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			j := i + 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			k := j
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k > j {
				i = k
			}
		}
	}

	if digits == 0 {
		return ""
	}
	return s[start:i]
}

func parseInt64(s string) int64 {
	p := numericPrefix(s, false)
	if p == "" {
		return 0
	}
	// on overflow ParseInt returns the saturated value alongside the error
	v, _ := strconv.ParseInt(p, 10, 64)
	return v
}

// ParseInt reads a setting value as a 32-bit integer. Values outside the
// int32 range saturate.
func ParseInt(s string) int {
	v := parseInt64(s)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

// ParseUint32 reads a button assignment. Older documents rendered assignments
// with the top bit set as negative numbers; both renderings give the same bits.
func ParseUint32(s string) uint32 {
	v := parseInt64(s)
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	if v < math.MinInt32 {
		v = math.MinInt32
	}
	return uint32(v)
}

// ParseFloat reads a setting value as a float.
func ParseFloat(s string) float32 {
	p := numericPrefix(s, true)
	if p == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(p, 32)
	return float32(v)
}

// FormatFloat renders a float with two decimals and a '.' separator.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}
