package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var dateParser = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
	TimeFormats:  []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04", "2006-01-02 15:04:05"},
}

// ParseDate accepts RFC 3339 timestamps and the plain date layouts the
// portal forms send ("2025-08-20", "20/08/2025", "2025-08-20 10:00").
func ParseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, trimmed); err == nil {
		return t.UTC(), nil
	}
	t, err := dateParser.Parse(trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", trimmed)
	}
	return t.UTC(), nil
}

// FlexibleDate decodes any layout ParseDate understands.
type FlexibleDate struct {
	time.Time
}

func (d *FlexibleDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseDate(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d FlexibleDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Ptr returns nil for a nil or zero date.
func (d *FlexibleDate) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
