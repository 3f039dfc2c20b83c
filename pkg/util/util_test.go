package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must(3, nil))

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() { Must(0, boom) })
	assert.NotPanics(t, func() { PanicIfErr(nil) })
}
