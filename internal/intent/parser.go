package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
)

// ParsedIntent is a logging intent extracted from free-form text.
type ParsedIntent struct {
	Activity string      `json:"activity"`
	Amount   float64     `json:"amount"`
	Unit     domain.Unit `json:"unit"`
	Date     string      `json:"date"`
}

// Rule recognizes one builtin category. Match gates the rule on the
// lowercased text; Extract reads amount and unit from the same text.
type Rule struct {
	Activity string
	Match    func(text string) bool
	Extract  func(text string) (float64, domain.Unit)
}

var (
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

	codingQuestionsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:coding|leetcode|algorithm|dsa)?\s*(?:problems?|questions?|challenges?)`)
	codingMinutesRe   = regexp.MustCompile(`(?:coded|coding)\s*(?:for\s*)?(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)`)
	sleepHoursRe      = regexp.MustCompile(`(?:slept|sleep)\s*(?:for\s*)?(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)`)
	readingKeywordRe  = regexp.MustCompile(`\bread(?:ing)?\b|\bbooks?\b`)
	readingPagesRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:pages?|chapters?)`)
	readingMinutesRe  = regexp.MustCompile(`(?:read|reading)\s*(?:for\s*)?(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)`)
	meditationMinRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)`)
)

// BuiltinRules lists the builtin categories in priority order. The first rule
// whose Match reports true wins.
var BuiltinRules = []Rule{
	{
		Activity: domain.ActivityCoding,
		Match:    containsAny("coding", "dsa", "code", "leetcode", "problems", "algorithm"),
		Extract: func(text string) (float64, domain.Unit) {
			if n, ok := capture(codingQuestionsRe, text); ok {
				return n, domain.UnitQuestions
			}
			if n, ok := capture(codingMinutesRe, text); ok {
				return n, domain.UnitMinutes
			}
			return 1, domain.UnitSession
		},
	},
	{
		Activity: domain.ActivityGym,
		Match:    containsAny("gym", "workout", "exercise"),
		Extract: func(string) (float64, domain.Unit) {
			return 1, domain.UnitSession
		},
	},
	{
		Activity: domain.ActivitySleep,
		Match:    containsAny("sleep", "slept"),
		Extract: func(text string) (float64, domain.Unit) {
			if n, ok := capture(sleepHoursRe, text); ok {
				return n, domain.UnitHours
			}
			return 8, domain.UnitHours
		},
	},
	{
		Activity: domain.ActivityReading,
		Match:    readingKeywordRe.MatchString,
		Extract: func(text string) (float64, domain.Unit) {
			if n, ok := capture(readingPagesRe, text); ok {
				return n, domain.UnitPages
			}
			if n, ok := capture(readingMinutesRe, text); ok {
				return n, domain.UnitMinutes
			}
			return 1, domain.UnitSession
		},
	},
	{
		Activity: domain.ActivityMeditation,
		Match:    containsAny("meditat", "mindful"),
		Extract: func(text string) (float64, domain.Unit) {
			if n, ok := capture(meditationMinRe, text); ok {
				return n, domain.UnitMinutes
			}
			return 10, domain.UnitMinutes
		},
	},
}

// Parse maps a message to a logging intent. Known activities are checked
// first in the given order by plain substring match; builtin rules are only
// consulted when none of them matched. Reports false when nothing matched.
//
// A builtin becomes a known activity after its first log, so later messages
// for it take the known-activity branch and use InferUnit. "3 coding
// questions" scores as questions the first time and as a session afterwards.
func Parse(text string, known []string, now time.Time) (ParsedIntent, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ParsedIntent{}, false
	}
	date := ResolveDate(lower, now)

	for _, name := range known {
		n := strings.ToLower(name)
		if n == "" || !strings.Contains(lower, n) {
			continue
		}
		return ParsedIntent{
			Activity: name,
			Amount:   FirstNumber(lower, 1),
			Unit:     InferUnit(lower),
			Date:     date,
		}, true
	}

	for _, r := range BuiltinRules {
		if !r.Match(lower) {
			continue
		}
		amount, unit := r.Extract(lower)
		return ParsedIntent{Activity: r.Activity, Amount: amount, Unit: unit, Date: date}, true
	}
	return ParsedIntent{}, false
}

// ResolveDate returns yesterday's calendar day when the text mentions
// "yesterday", otherwise today's.
func ResolveDate(text string, now time.Time) string {
	if strings.Contains(strings.ToLower(text), "yesterday") {
		return domain.DayOf(now.AddDate(0, 0, -1))
	}
	return domain.DayOf(now)
}

// FirstNumber returns the first integer or decimal in text, or def.
func FirstNumber(text string, def float64) float64 {
	m := numberRe.FindString(text)
	if m == "" {
		return def
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return def
	}
	return n
}

// InferUnit scans text for unit keywords. Falls back to a session.
func InferUnit(text string) domain.Unit {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "minute"), strings.Contains(text, "min"):
		return domain.UnitMinutes
	case strings.Contains(text, "hour"), strings.Contains(text, "hr"):
		return domain.UnitHours
	case strings.Contains(text, "page"), strings.Contains(text, "chapter"):
		return domain.UnitPages
	case strings.Contains(text, "mile"), strings.Contains(text, "km"), strings.Contains(text, "step"):
		return domain.UnitDistance
	default:
		return domain.UnitSession
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

func capture(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
