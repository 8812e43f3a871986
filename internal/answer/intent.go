package answer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Intent is the structured reading of a free-text question. Extraction never
// fails: fields that cannot be recognized are simply absent, and Kind falls
// back to Unrecognized.
type Intent struct {
	Kind     Kind
	Route    string // route short name, "" when absent
	Date     time.Time
	Time     string // "HH:MM:SS", "" when absent
	FromText string
	ToText   string
}

var (
	routeRe    = regexp.MustCompile(`(?i)\broute\s+(\d+)\b`)
	isoDateRe  = regexp.MustCompile(`\b(20\d{2})-(\d{2})-(\d{2})\b`)
	mdyDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	clockRe    = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	fromToRe   = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(.+?)(?:\s+on|\s+at|\s+around|\?|$)`)
	stopTermRe = regexp.MustCompile(`(?i)\b(?:from|leaving)\s+(.+?)(?:\s+on|\s+at|\s+around|\?|$)`)
)

// weekday names in question text map to the next occurrence of that weekday
// on or after today; a same-day match means today, not next week
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// ExtractIntent parses a question into an Intent. The caller supplies now so
// relative dates ("today", weekday names) are reproducible in tests.
func ExtractIntent(question string, now time.Time) Intent {
	intent := Intent{
		Route: parseRoute(question),
		Date:  parseDate(question, now),
		Time:  parseClock(question),
	}
	intent.FromText, intent.ToText = parseFromTo(question)

	lower := strings.ToLower(question)
	switch {
	case strings.Contains(lower, "fastest") && strings.Contains(lower, "from") && strings.Contains(lower, "to"):
		intent.Kind = FastestTransfer
	case intent.Route != "" && strings.Contains(lower, "last"):
		intent.Kind = LastDeparture
	case intent.Route != "" && strings.Contains(lower, "first"):
		intent.Kind = FirstDeparture
	case intent.Route != "" && intent.Time != "":
		intent.Kind = NextDeparture
	default:
		intent.Kind = Unrecognized
	}

	return intent
}

func parseRoute(text string) string {
	m := routeRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func parseDate(text string, now time.Time) time.Time {
	text = strings.ToLower(text)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		return dateFromParts(m[1], m[2], m[3], now.Location())
	}

	if m := mdyDateRe.FindStringSubmatch(text); m != nil {
		return dateFromParts(m[3], m[1], m[2], now.Location())
	}

	for _, wd := range weekdayNames {
		if strings.Contains(text, wd.name) {
			daysAhead := (int(wd.day) - int(today.Weekday()) + 7) % 7
			return today.AddDate(0, 0, daysAhead)
		}
	}

	if strings.Contains(text, "today") {
		return today
	}
	if strings.Contains(text, "tomorrow") {
		return today.AddDate(0, 0, 1)
	}
	return today
}

func dateFromParts(year, month, day string, loc *time.Location) time.Time {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// parseClock extracts an am/pm time and converts it to 24-hour HH:MM:SS
func parseClock(text string) string {
	m := clockRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return ""
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if m[3] == "pm" && hour != 12 {
		hour += 12
	}
	if m[3] == "am" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

// parseFromTo extracts the origin and destination span of a transfer
// question. The span is terminated by "on"/"at"/"around", a question mark, or
// the end of the string.
func parseFromTo(text string) (string, string) {
	m := fromToRe.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

// stopPhrase pulls the likely stop name out of a departure question: the text
// after "from" or "leaving", or failing that the last two words.
func stopPhrase(question string) string {
	if m := stopTermRe.FindStringSubmatch(question); m != nil {
		return strings.TrimSpace(m[1])
	}
	words := strings.Fields(question)
	if len(words) > 2 {
		words = words[len(words)-2:]
	}
	return strings.Join(words, " ")
}
