package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/timeline-visualizer/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRequest валидирует запрос и возвращает ErrInvalidRequest
// с перечнем полей, не прошедших проверку
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest
	}

	fields := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}
