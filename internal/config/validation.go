package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration, including the
// resource names used as map keys which struct tags cannot reach.
func ValidateConfig(cfg *Config) error {
	if err := NewValidator().Validate(cfg); err != nil {
		return err
	}
	if _, err := parseAmount(cfg.Players.Stockpile); err != nil {
		return fmt.Errorf("players.stockpile: %w", err)
	}
	for i, it := range cfg.Market.Items {
		if _, err := parseAmount(it.Give); err != nil {
			return fmt.Errorf("market.items[%d].give: %w", i, err)
		}
	}
	for i, it := range cfg.Production.Items {
		if _, err := parseAmount(it.Cost); err != nil {
			return fmt.Errorf("production.items[%d].cost: %w", i, err)
		}
	}
	return nil
}
