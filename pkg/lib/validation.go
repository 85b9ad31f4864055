package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var goValidator = validator.New()

// ValidateStruct checks the validate tags on s.
// Returns nil when every constraint holds.
func ValidateStruct(s any) error {
	err := goValidator.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fmt.Sprintf("%s %s", fe.Field(), fe.ActualTag()))
		}
		return fmt.Errorf("invalid fields: %s", strings.Join(fields, "; "))
	}

	return err
}
