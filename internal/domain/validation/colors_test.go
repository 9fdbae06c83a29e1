package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/keyedit/internal/domain/validation"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, validation.IsHexColor("#4ade80"))
	assert.True(t, validation.IsHexColor("#FFFFFF"))
	assert.False(t, validation.IsHexColor("#fff"))
	assert.False(t, validation.IsHexColor("4ade80"))
	assert.False(t, validation.IsHexColor("green"))
}
