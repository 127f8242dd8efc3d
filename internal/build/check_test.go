package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("sudo apt install -y curl htop\n"))
	assert.NoError(t, Check(""))

	err := Check("(\n  cd somewhere\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "script syntax error")
}
