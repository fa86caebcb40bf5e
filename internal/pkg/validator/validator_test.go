package validator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gvalidator "github.com/go-playground/validator/v10"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type record struct {
		ID      string          `validate:"required"`
		Token   *common.Address `validate:"required_with=To"`
		To      *common.Address
		Address common.Address `validate:"required"`
	}

	addr := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	t.Run("should accept a valid struct", func(t *testing.T) {
		err := Validate(record{ID: "a", Token: &addr, To: &addr, Address: addr})
		assert.NoError(t, err)
	})

	t.Run("should treat the zero address as missing", func(t *testing.T) {
		err := Validate(record{ID: "a"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'record.Address'")
		assert.Contains(t, err.Error(), "'required' validation")
	})

	t.Run("should require the token when the target is set", func(t *testing.T) {
		err := Validate(record{ID: "a", To: &addr, Address: addr})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'required_with' validation")
	})

	t.Run("should not require the token without a target", func(t *testing.T) {
		assert.NoError(t, Validate(record{ID: "a", Address: addr}))
	})

	t.Run("should report every failing field", func(t *testing.T) {
		err := Validate(record{To: &addr})
		require.Error(t, err)

		msg := err.Error()
		assert.Contains(t, msg, "'record.ID'")
		assert.Contains(t, msg, "'record.Token'")
		assert.Contains(t, msg, "'record.Address'")
	})

	t.Run("should reject non-struct values", func(t *testing.T) {
		err := Validate("not a struct")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidationFailed)
	})
}

func TestFormatError(t *testing.T) {
	t.Run("should keep unrelated errors", func(t *testing.T) {
		original := errors.New("database connection failed")
		assert.Equal(t, original, formatError(original))
	})

	t.Run("should format validation errors", func(t *testing.T) {
		type input struct {
			Name string `validate:"required"`
		}

		err := formatError(gvalidator.New().Struct(input{}))
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'input.Name': value '' does not meet the requirements for the 'required' validation")
	})
}

func TestAddressValue(t *testing.T) {
	t.Run("should hide the zero address", func(t *testing.T) {
		assert.Nil(t, addressValue(reflect.ValueOf(common.Address{})))
		assert.Error(t, validator.Var(common.Address{}, "required"))
	})

	t.Run("should expose a set address as checksummed hex", func(t *testing.T) {
		addr := common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")

		assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", addressValue(reflect.ValueOf(addr)))
		assert.NoError(t, validator.Var(addr, "required"))
	})
}
