package service

import (
	"reflect"
	"strings"

	"finadmin/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// Shared payload validator. Field names in error reports follow the JSON
// tags so callers see the keys they actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs tag-based validation and converts failures into the
// domain ValidationError with the full offending-field list.
func validateStruct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: "failed on rule '" + fe.Tag() + "'",
		})
	}
	return &apperrors.ValidationError{Fields: fields}
}
