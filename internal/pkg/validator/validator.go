// Package validator wraps go-playground/validator with the project's error
// format and Ethereum-aware field handling.
//
// Struct fields are validated through tags (e.g. `validate:"required"`).
// go-ethereum addresses are understood natively: a zero common.Address or a
// nil *common.Address counts as missing for required-style tags.
package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned by Validate
// when any rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the package singleton, built on import.
var validator *gvalidator.Validate

// errStringFormat describes a single violated rule.
//
// Example: "'Token': value '<nil>' does not meet the requirements for the 'required_with' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterCustomTypeFunc(addressValue, common.Address{})
}

// addressValue exposes an address to the rule engine as its checksummed
// hex form, or as nil when it is the zero address.
func addressValue(v reflect.Value) any {
	addr, ok := v.Interface().(common.Address)
	if !ok || addr == (common.Address{}) {
		return nil
	}
	return addr.Hex()
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per failed field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validation tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the configuration
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
