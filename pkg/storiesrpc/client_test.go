package storiesrpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrPassesThroughNil(t *testing.T) {
	assert.NoError(t, wrapErr(nil))
}

func TestWrapErrPreservesErrorsIs(t *testing.T) {
	sentinel := errors.New("boom")
	wrapped := wrapErr(sentinel)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.Contains(t, wrapped.Error(), "boom")
}
