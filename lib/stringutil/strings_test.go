package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	assert.False(t, Empty("hi", "there"))
	assert.False(t, Empty("hello"))

	assert.True(t, Empty(""))
	assert.True(t, Empty("", "there"))
	assert.True(t, Empty("hi", ""))
}
