package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
)

var tags = map[string]validator.Func{
	"hhmm":           validateClock,
	"weekday":        validateWeekday,
	"booking_status": validateStatus,
}

// Register adds the scheduling tags to v.
func Register(v *validator.Validate) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

// RegisterGin installs the tags on gin's binding validator.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validators: gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := booking.ParseClock(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := booking.ParseWeekday(fl.Field().String())
	return err == nil
}

func validateStatus(fl validator.FieldLevel) bool {
	_, err := booking.ParseStatus(fl.Field().String())
	return err == nil
}

// Describe turns binding errors into one caller-facing line.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "hhmm":
		return field + " must be HH:MM"
	case "weekday":
		return field + " must be one of Monday..Sunday"
	case "booking_status":
		return field + " must be pending, approved, rejected or cancelled"
	case "datetime":
		return field + " must be YYYY-MM-DD"
	case "email":
		return field + " must be a valid email"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
