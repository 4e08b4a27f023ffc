package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

type blankForm struct {
	Name string   `binding:"notblank"`
	Tags []string `binding:"dive,notblank"`
}

func TestNotBlankValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())

	require.NoError(t, binding.Validator.ValidateStruct(&blankForm{Name: "Sarah", Tags: []string{"fintech"}}))
	require.Error(t, binding.Validator.ValidateStruct(&blankForm{Name: "   "}))
	require.Error(t, binding.Validator.ValidateStruct(&blankForm{Name: "Sarah", Tags: []string{"ok", " "}}))
}
