package report

import (
	"regexp"
	"strings"
	"time"

	"github.com/goto/folio/domain"
)

var (
	numberPattern = regexp.MustCompile(`[#0]`)
	datePattern   = regexp.MustCompile(`[yMdhHmsS]`)
)

// displayTypeFromPattern guesses the display type of a computed column from
// its format pattern.
func displayTypeFromPattern(pattern string) domain.DisplayType {
	if strings.TrimSpace(pattern) == "" {
		return domain.DisplayTypeText
	}
	if numberPattern.MatchString(pattern) {
		return domain.DisplayTypeNumber
	}
	if datePattern.MatchString(pattern) {
		return domain.DisplayTypeDateTime
	}
	return domain.DisplayTypeText
}

var dateTokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"a", "PM"},
	{"z", "MST"},
	{"Z", "-0700"},
}

// dateLayout converts a date format pattern such as "dd.MM.yyyy HH:mm" to a
// time layout. An empty pattern yields the default layout of the display
// type.
func dateLayout(pattern string, displayType domain.DisplayType) string {
	if strings.TrimSpace(pattern) == "" {
		switch displayType {
		case domain.DisplayTypeDateTime:
			return time.DateTime
		case domain.DisplayTypeTime:
			return time.TimeOnly
		}
		return time.DateOnly
	}

	var out strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				out.WriteString(pattern[i+1:])
				break
			}
			out.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(pattern[i:], t.pattern) {
				out.WriteString(t.layout)
				i += len(t.pattern)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(pattern[i])
			i++
		}
	}

	return out.String()
}

func formatDate(t time.Time, pattern string, displayType domain.DisplayType) string {
	return t.Format(dateLayout(pattern, displayType))
}
