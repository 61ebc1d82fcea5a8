package assessment

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Tier thresholds, evaluated from highest to lowest.
const (
	thresholdImplementation = 35000
	thresholdDiscovery      = 15000
	thresholdAdvisory       = 2490
)

// ExtractDigits concatenates every ASCII digit in s and parses the result.
// "$35,000-75,000" yields 3500075000: ranges are not understood, every
// digit in the string counts. Strings without digits yield (0, false).
// Digit runs too long for int64 saturate at math.MaxInt64.
func ExtractDigits(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		// Only ErrRange is possible for a pure digit string.
		return math.MaxInt64, true
	}
	return v, true
}

// ClassifyTier maps free-text budget to a service tier. The second return
// value is false when the budget is below the advisory price or carries
// no digits at all.
func ClassifyTier(budget string) (TierID, bool) {
	v, ok := ExtractDigits(budget)
	if !ok {
		return "", false
	}
	switch {
	case v >= thresholdImplementation:
		return TierImplementation, true
	case v >= thresholdDiscovery:
		return TierDiscovery, true
	case v >= thresholdAdvisory:
		return TierAdvisory, true
	default:
		return "", false
	}
}

// ParseCost reads a pain-point cost such as "$5K/month" as a monthly
// figure. Without a suffix, digits are extracted as in ExtractDigits. A K
// or M directly after the last digit (spaces allowed) scales the last
// number in the string, read as a decimal, so "$1.5K" is 1500. Costs
// without digits are 0.
func ParseCost(cost string) float64 {
	v, ok := ExtractDigits(cost)
	if !ok {
		return 0
	}
	mult := costMultiplier(cost)
	if mult == 1 {
		return float64(v)
	}
	n, err := strconv.ParseFloat(lastNumber(cost), 64)
	if err != nil {
		return float64(v) * mult
	}
	return n * mult
}

// lastNumber returns the final run of digits, commas and dots in s with
// the commas removed.
func lastNumber(s string) string {
	end := strings.LastIndexFunc(s, isDigit) + 1
	start := end
	for start > 0 {
		c := rune(s[start-1])
		if !isDigit(c) && c != ',' && c != '.' {
			break
		}
		start--
	}
	return strings.ReplaceAll(s[start:end], ",", "")
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func costMultiplier(cost string) float64 {
	last := strings.LastIndexFunc(cost, isDigit)
	rest := strings.TrimLeftFunc(cost[last+1:], unicode.IsSpace)
	if rest == "" {
		return 1
	}
	// A suffix only counts when no letter follows it: "500 monthly" is
	// not five hundred million.
	if len(rest) > 1 && unicode.IsLetter(rune(rest[1])) {
		return 1
	}
	switch rest[0] {
	case 'k', 'K':
		return 1_000
	case 'm', 'M':
		return 1_000_000
	default:
		return 1
	}
}
