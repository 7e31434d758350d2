// Package types contains small value types shared across layers.
package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" format.
// It is used for business-hours boundaries, which are defined in the
// venue's local timezone and carry no date component.
type TimeString string

// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time.
var ErrInvalidTimeString = errors.New("invalid time string format")

// ErrTimeOverflow is returned when an arithmetic result leaves the 00:00-23:59 range.
var ErrTimeOverflow = errors.New("time out of day range")

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" format and range.
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	h, m, err := t.parts()
	if err != nil {
		return err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Hour returns the hour component.
func (t TimeString) Hour() int {
	h, _, _ := t.parts()
	return h
}

// Minute returns the minute component.
func (t TimeString) Minute() int {
	_, m, _ := t.parts()
	return m
}

// MinutesFromMidnight returns the offset from 00:00 in minutes.
func (t TimeString) MinutesFromMidnight() int {
	h, m, _ := t.parts()
	return h*60 + m
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesFromMidnight() > other.MinutesFromMidnight()
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result must stay within the same day; "24:00" is allowed as an
// exclusive end-of-day boundary.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.MinutesFromMidnight() + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOverflow, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) parts() (hour, minute int, err error) {
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return hour, minute, nil
}
