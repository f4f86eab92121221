package timezone

import "time"

const DefaultTimezone = "UTC"

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = DateLayout + " " + ClockLayout
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Floating drops the location from t and keeps its wall-clock reading.
// Every stored and compared time in the scheduler is floating; the shop
// location only matters when reading the real clock.
func Floating(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		time.UTC,
	)
}

func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.UTC)
}

func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+clock, time.UTC)
}

type Clock interface {
	Now() time.Time
}

// ShopClock reads the real clock as wall-clock time in the shop location.
type ShopClock struct {
	loc *time.Location
}

func NewShopClock(tz string) ShopClock {
	return ShopClock{loc: Location(tz)}
}

func (c ShopClock) Now() time.Time {
	return Floating(time.Now().In(c.loc))
}
