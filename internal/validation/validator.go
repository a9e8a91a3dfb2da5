package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("fund_code", validateFundCode)
	_ = v.RegisterValidation("entry_type", validateEntryType)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateFundCode validates that a fund code is 2-20 uppercase letters,
// digits or underscores. Lowercase input is accepted since fund codes are
// normalized to uppercase before storage.
func validateFundCode(fl validator.FieldLevel) bool {
	code := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	if code == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Z0-9_]{2,20}$`, code)
	return matched
}

// validateEntryType validates that the entry type is income or expense
func validateEntryType(fl validator.FieldLevel) bool {
	entryType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"income":  true,
		"expense": true,
	}
	return validTypes[entryType]
}

// validateISODate validates a date string in YYYY-MM-DD format
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// validateMoneyAmount validates that an amount string parses as a non-zero
// decimal with at most 2 fractional digits
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}

	if amount.IsZero() {
		return false
	}

	return amount.Exponent() >= -2
}
