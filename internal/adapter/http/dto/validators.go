package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])[0-9]{2}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cardexpiry", validateCardExpiry)
		_ = v.RegisterValidation("decimalamount", validateDecimalAmount)
	}
}

// validateCardExpiry accepts MMYY with a month between 01 and 12.
func validateCardExpiry(fl validator.FieldLevel) bool {
	return expiryRe.MatchString(fl.Field().String())
}

// validateDecimalAmount accepts a non-negative decimal string.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}
