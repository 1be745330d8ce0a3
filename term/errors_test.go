package term

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "🚨 Network error.", FormatError("network error."))
	assert.Equal(t, "🚨 Error loading calendar\n  → Boom", FormatError("error loading calendar: boom: boom"))
	assert.Equal(t, "🚨 Error deleting schedule 4\n  → Not found\n    → Try again", FormatError("error deleting schedule 4: not found: try again"))
}
