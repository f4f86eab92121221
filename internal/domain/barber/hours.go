package barber

import (
	"fmt"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type DayHours struct {
	Day       string
	OpenTime  string
	CloseTime string
	IsClosed  bool
}

// BuildOperatingHours validates a full weekly schedule and returns rows
// keyed by canonical day names. Days may appear at most once.
func BuildOperatingHours(barberID uint, days []DayHours) ([]models.OperatingHour, error) {
	seen := make(map[booking.Weekday]bool, len(days))
	rows := make([]models.OperatingHour, 0, len(days))

	for _, d := range days {
		day, err := booking.ParseWeekday(d.Day)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			return nil, booking.Invalid(fmt.Sprintf("%s listed more than once", day))
		}
		seen[day] = true

		row := models.OperatingHour{BarberID: barberID, Day: string(day), IsClosed: d.IsClosed}
		if !d.IsClosed {
			if _, err := booking.NewWindow(d.OpenTime, d.CloseTime); err != nil {
				return nil, err
			}
			row.OpenTime = d.OpenTime
			row.CloseTime = d.CloseTime
		}
		rows = append(rows, row)
	}

	return rows, nil
}
