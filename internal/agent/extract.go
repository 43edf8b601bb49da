package agent

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/elliotchance/pie/v2"

	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

type unit int

const (
	unitNone unit = iota
	unitPercent
	unitMonths
	unitYears
)

// number is a figure found in normalized text plus the unit written right
// after it.
type number struct {
	value      float64
	start, end int
	unit       unit
}

var (
	numberRe     = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	percentRe    = regexp.MustCompile(`^\s*%`)
	multiplierRe = regexp.MustCompile(`^\s*(lucas|luca|mil|k|millones|millon|palos|palo)\b`)
	periodRe     = regexp.MustCompile(`^\s*(meses|mes|anios|anio|anos|ano)\b`)
)

var multipliers = map[string]float64{
	"luca": 1e3, "lucas": 1e3, "mil": 1e3, "k": 1e3,
	"millon": 1e6, "millones": 1e6, "palo": 1e6, "palos": 1e6,
}

func numbers(t string) []number {
	locs := numberRe.FindAllStringIndex(t, -1)
	out := make([]number, 0, len(locs))
	for _, loc := range locs {
		v, ok := parseNumber(t[loc[0]:loc[1]])
		if !ok {
			continue
		}
		n := number{value: v, start: loc[0], end: loc[1]}
		rest := t[loc[1]:]
		if percentRe.MatchString(rest) {
			n.unit = unitPercent
			out = append(out, n)
			continue
		}
		if m := multiplierRe.FindStringSubmatch(rest); m != nil {
			n.value *= multipliers[m[1]]
			rest = rest[len(m[0]):]
		}
		if m := periodRe.FindStringSubmatch(rest); m != nil {
			n.unit = unitYears
			if strings.HasPrefix(m[1], "mes") {
				n.unit = unitMonths
			}
		}
		out = append(out, n)
	}
	return out
}

// parseNumber reads "50000", "50.000", "1.500,50" and "12,5". A trailing
// group that is not three digits long is the decimal part; every other
// separator groups thousands.
func parseNumber(s string) (float64, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ',' })
	if len(parts) == 0 {
		return 0, false
	}
	frac := ""
	if n := len(parts); n > 1 && len(parts[n-1]) != 3 {
		frac = parts[n-1]
		parts = parts[:n-1]
	}
	digits := strings.Join(parts, "")
	if frac != "" {
		digits += "." + frac
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// plain keeps the numbers without a unit.
func plain(nums []number) []number {
	return pie.Filter(nums, func(n number) bool { return n.unit == unitNone })
}

// firstAmount is the first unitless figure, the currency amount in most
// utterances.
func firstAmount(nums []number) (float64, bool) {
	if p := plain(nums); len(p) > 0 {
		return p[0].value, true
	}
	return 0, false
}

// horizonMonths reads a duration: a figure followed by a month or year word,
// else the first bare figure counted as months.
func horizonMonths(nums []number) (int, bool) {
	for _, n := range nums {
		switch n.unit {
		case unitMonths:
			return int(n.value), n.value >= 1
		case unitYears:
			m := int(n.value * 12)
			return m, m >= 1
		}
	}
	if v, ok := firstAmount(nums); ok && v >= 1 {
		return int(v), true
	}
	return 0, false
}

var (
	ratePctRe      = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)
	rateWordRe     = regexp.MustCompile(`tasa\s*(?:de\s*|del\s*)?(\d+(?:[.,]\d+)?)`)
	contributionRe = regexp.MustCompile(`(aporte|mensual)\D*(\d+(?:[.,]\d+)*)`)
)

// span is a byte range of the text already consumed by a pattern.
type span [2]int

func (s span) covers(n number) bool { return n.start >= s[0] && n.end <= s[1] }

// rateIn finds "12%" or "tasa 12".
func rateIn(t string) (float64, span, bool) {
	for _, re := range []*regexp.Regexp{ratePctRe, rateWordRe} {
		if m := re.FindStringSubmatchIndex(t); m != nil {
			if v, ok := parseNumber(t[m[2]:m[3]]); ok {
				return v, span{m[0], m[1]}, true
			}
		}
	}
	return 0, span{}, false
}

// contributionIn finds "aporte 10000" or "mensual de 5000".
func contributionIn(t string) (float64, span, bool) {
	m := contributionRe.FindStringSubmatchIndex(t)
	if m == nil {
		return 0, span{}, false
	}
	v, ok := parseNumber(t[m[4]:m[5]])
	if !ok {
		return 0, span{}, false
	}
	return v, span{m[0], m[1]}, true
}

// hasWord reports whether any whole token of t is in words.
func hasWord(t string, words map[string]bool) bool {
	for _, tok := range textnorm.Tokens(t) {
		if words[strings.TrimFunc(tok, notWordRune)] {
			return true
		}
	}
	return false
}

func notWordRune(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }

func money(v float64) string { return fmt.Sprintf("$%.0f", v) }

// rate renders a rate or a year count the short way: 12, 12.5 or 0.17.
func rate(v float64) string { return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) }
