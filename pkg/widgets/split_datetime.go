package widgets

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// SplitDateTime presents one logical datetime value as two independently
// rendered sub-widgets. The halves submit as <name>_0 (date) and <name>_1
// (time); ParseSplit recombines them.
type SplitDateTime struct {
	noAssets
	Date DateInput
	Time TimeInput
}

func (w SplitDateTime) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	datePart, timePart := decompose(value)

	dateAttrs := attrs.Clone()
	timeAttrs := attrs.Clone()
	if id := attrs["id"]; id != "" {
		dateAttrs["id"] = id + "_0"
		timeAttrs["id"] = id + "_1"
	}

	if err := w.Date.Render(buf, name+"_0", datePart, dateAttrs); err != nil {
		return err
	}
	if err := w.Time.Render(buf, name+"_1", timePart, timeAttrs); err != nil {
		return err
	}
	return nil
}

func decompose(value any) (string, string) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return "", ""
		}
		return v.Format(dateFormat), v.Format(timeFormat)
	case *time.Time:
		if v == nil {
			return "", ""
		}
		return decompose(*v)
	case string:
		if t, err := time.Parse(datetimeFormat, v); err == nil {
			return t.Format(dateFormat), t.Format(timeFormat)
		}
		return v, ""
	default:
		return "", ""
	}
}

// SplitEmpty reports whether both submitted halves are blank.
func SplitEmpty(data url.Values, name string) bool {
	return strings.TrimSpace(data.Get(name+"_0")) == "" && strings.TrimSpace(data.Get(name+"_1")) == ""
}

// ParseSplit recombines the two submitted halves into a single time value.
func ParseSplit(data url.Values, name string) (time.Time, error) {
	datePart := strings.TrimSpace(data.Get(name + "_0"))
	timePart := strings.TrimSpace(data.Get(name + "_1"))
	if datePart == "" {
		return time.Time{}, fmt.Errorf("widgets: missing date for %q", name)
	}
	if timePart == "" {
		timePart = "00:00"
	}

	layout := dateFormat + " " + timeFormat
	if strings.Count(timePart, ":") == 2 {
		layout = dateFormat + " 15:04:05"
	}
	t, err := time.ParseInLocation(layout, datePart+" "+timePart, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("widgets: invalid date/time %q %q for %q", datePart, timePart, name)
	}
	return t, nil
}
