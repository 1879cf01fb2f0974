package validation

import (
	"reflect"
	"regexp"
	"strings"

	"ledger-bot/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var plainAmountPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

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

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("alias_token", validateAliasToken)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateDecimalAmount accepts a plain decimal string, without exponent,
// that fits the money columns after rounding to cents
func validateDecimalAmount(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if !plainAmountPattern.MatchString(raw) {
		return false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return models.CheckAmount(models.RoundAmount(amount)) == nil
}

// validateAliasToken accepts a single word that fits the alias column
func validateAliasToken(fl validator.FieldLevel) bool {
	token := models.NormalizeAlias(fl.Field().String())
	if token == "" || len(token) > models.MaxAliasLength {
		return false
	}
	return !strings.ContainsAny(token, " \t\n")
}
