package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, AbsDiff(100, 103))
	assert.Equal(t, 3, AbsDiff(100, 97))
	assert.Equal(t, 0, AbsDiff(100, 100))
	assert.InDelta(t, 3.01, AbsDiff(50.0, 53.01), 0.0001)
}
