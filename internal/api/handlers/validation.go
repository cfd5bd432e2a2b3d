package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// date: YYYY-MM-DD
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseDate(fl.Field().String())
		return err == nil
	})
	// hhmm: HH:MM
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := types.NewTimeStringFromString(fl.Field().String())
		return err == nil
	})
	// availability_status: OPEN, ASSIGNED, CLOSED
	_ = v.RegisterValidation("availability_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseAvailabilityStatus(fl.Field().String())
		return err == nil
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct проверяет теги validate и возвращает ошибку с перечнем полей
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
}
