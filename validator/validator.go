package validator

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"hotelinfo/constants"
	"hotelinfo/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupOnce sync.Once

// Setup makes gin's validator report json field names and registers the
// hoteltype rule. Safe to call more than once.
func Setup() *validator.Validate {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	setupOnce.Do(func() {
		if v == nil {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("hoteltype", func(fl validator.FieldLevel) bool {
			return ValidateHotelType(int(fl.Field().Int())) == nil
		})
	})
	return v
}

// ValidateStruct runs the binding rules of s
func ValidateStruct(s interface{}) error {
	Setup()
	if err := binding.Validator.ValidateStruct(s); err != nil {
		return FromBindError(err)
	}
	return nil
}

// FromBindError turns a binding or validation error into a 400 AppError
func FromBindError(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make([]errors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, errors.FieldError{
				Field: fe.Field(),
				Error: describe(fe),
			})
		}
		return errors.NewValidationError("Validation failed", fields)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Malformed JSON body", err)
	case stderrors.As(err, &typeErr):
		return errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("Invalid value for field %s", typeErr.Field), err)
	}
	return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid request body", err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url":
		return "must be a valid URL"
	case "hoteltype":
		return "must be one of [0 1 2]"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// ValidateStay checks the booking date range
func ValidateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "checkIn and checkOut are required", nil)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, errors.ErrInvalidStay.Error(), errors.ErrInvalidStay)
	}
	return nil
}

// ValidateHotelType checks the hotel type enum
func ValidateHotelType(hotelType int) error {
	if _, ok := constants.HotelTypeNames[hotelType]; !ok {
		return errors.NewValidationError("Validation failed", []errors.FieldError{
			{Field: "hotelType", Error: "must be one of [0 1 2]"},
		})
	}
	return nil
}
