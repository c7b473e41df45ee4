package service

import (
	"strings"
	"time"

	"github.com/templui/postpage/internal/locale"
	"golang.org/x/text/language"
)

// InvalidDate is shown when a post date cannot be parsed.
const InvalidDate = "Invalid Date"

// ISO-8601 layouts accepted for post dates. Fractional seconds are accepted
// after any seconds field.
var (
	zonedLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z0700",
	}

	// Read in the formatter's location.
	zonelessLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}

	// Read as UTC midnight.
	dateOnlyLayouts = []string{
		"2006-01-02",
		"2006-01",
		"2006",
	}
)

// DateFormatter renders ISO-8601 post dates as short localized dates.
type DateFormatter struct {
	location *time.Location
	fallback language.Tag
}

func NewDateFormatter(location *time.Location, fallback language.Tag) *DateFormatter {
	if location == nil {
		location = time.UTC
	}
	return &DateFormatter{
		location: location,
		fallback: fallback,
	}
}

// Format parses raw and formats it in the formatter's time zone for tag.
// language.Und selects the fallback locale.
func (f *DateFormatter) Format(raw string, tag language.Tag) string {
	t, ok := f.parse(raw)
	if !ok {
		return InvalidDate
	}

	if tag == language.Und {
		tag = f.fallback
	}

	return locale.ShortDate(t.In(f.location), tag)
}

// parse accepts ISO-8601 timestamps with or without a zone, and date-only
// values down to a bare year. Zone-less date-times are read in the
// formatter's location; date-only values are UTC.
func (f *DateFormatter) parse(raw string) (time.Time, bool) {
	// "t" and "z" are valid in lower case
	raw = strings.ToUpper(strings.TrimSpace(raw))

	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, true
		}
	}

	for _, layout := range zonelessLayouts {
		t, err := time.ParseInLocation(layout, raw, f.location)
		if err == nil {
			return t, true
		}
	}

	for _, layout := range dateOnlyLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
