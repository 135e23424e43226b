package handler

import (
	"time"
)

const dayFormat = "2006-01-02"

func parseDay(s string) (time.Time, error) {
	return time.Parse(dayFormat, s)
}

// optionalDay parses a day query parameter; empty means no filter.
func optionalDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	day, err := parseDay(s)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
