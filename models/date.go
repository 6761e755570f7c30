package models

import (
	"fmt"
	"strings"
	"time"
)

// Date is a time.Time that unmarshals from either a bare ISO date
// ("2024-01-15") or a full RFC 3339 timestamp. Request payloads send
// dates as strings; this normalizes them at the boundary.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}

// TimePtr returns the underlying time, or nil for a nil Date. Handy when
// copying optional input fields onto a model.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
