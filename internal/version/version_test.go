package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.Contains(t, String(), "blogbuilder "+Version)
	assert.Contains(t, String(), GitCommit)
}
