package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

// Window is an open/close pair expressed as offsets from midnight.
type Window struct {
	Open  time.Duration
	Close time.Duration
}

func ParseClock(hm string) (time.Duration, error) {
	t, err := time.Parse(timezone.ClockLayout, hm)
	if err != nil || len(hm) != len(timezone.ClockLayout) {
		return 0, Invalid(fmt.Sprintf("time %q must be HH:MM", hm))
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func NewWindow(open, closeAt string) (Window, error) {
	o, err := ParseClock(open)
	if err != nil {
		return Window{}, err
	}
	c, err := ParseClock(closeAt)
	if err != nil {
		return Window{}, err
	}
	if o >= c {
		return Window{}, Invalid("open_time must be before close_time")
	}
	return Window{Open: o, Close: c}, nil
}

// WindowFromRecord returns ok=false for closed days.
func WindowFromRecord(oh *models.OperatingHour) (Window, bool, error) {
	if oh == nil || oh.IsClosed {
		return Window{}, false, nil
	}
	w, err := NewWindow(oh.OpenTime, oh.CloseTime)
	if err != nil {
		return Window{}, false, err
	}
	return w, true, nil
}

// Fits reports whether [start, start+d) lies inside the window on start's
// calendar day. An end past midnight never fits.
func (w Window) Fits(start time.Time, d time.Duration) bool {
	s := SinceMidnight(start)
	e := s + d
	return w.Open <= s && s < w.Close && w.Open < e && e <= w.Close
}

func (w Window) StartOn(day time.Time) time.Time {
	return Midnight(day).Add(w.Open)
}

func (w Window) CloseOn(day time.Time) time.Time {
	return Midnight(day).Add(w.Close)
}

func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SinceMidnight(t time.Time) time.Duration {
	return t.Sub(Midnight(t))
}
