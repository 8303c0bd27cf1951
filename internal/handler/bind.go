package handler

import (
	"errors"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shortener-go/internal/apperrors"
)

// bindError turns a binding failure into a 400, using the msg tag of the first
// failing field of target when it has one.
func bindError(err error, target any) *apperrors.AppError {
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		for _, e := range sliceErrs {
			if e != nil {
				err = e
				break
			}
		}
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.InvalidRequestErrorDefault()
	}

	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return apperrors.InvalidRequestErrorDefault()
	}

	for _, e := range validationErrs {
		field, ok := t.FieldByName(e.StructField())
		if !ok {
			continue
		}
		if customMsg := field.Tag.Get("msg"); customMsg != "" {
			return apperrors.InvalidRequestError(customMsg, e.Error())
		}
	}
	return apperrors.InvalidRequestErrorDefault()
}
