package util

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNotBlank(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("notblank", ValidateNotBlank))

	type input struct {
		Name string `validate:"notblank"`
	}

	assert.NoError(t, v.Struct(input{Name: "A"}))
	assert.Error(t, v.Struct(input{Name: ""}))
	assert.Error(t, v.Struct(input{Name: "   "}))
}

func TestRegisterValidatorsOnGinEngine(t *testing.T) {
	RegisterValidators()
	RegisterValidators()

	type input struct {
		Name string `binding:"notblank"`
	}
	assert.Error(t, binding.Validator.ValidateStruct(&input{Name: " "}))
	assert.NoError(t, binding.Validator.ValidateStruct(&input{Name: "A"}))
}
