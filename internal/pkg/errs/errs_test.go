//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"racing-ticket-desk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkIsVisibleThroughIs(t *testing.T) {
	cause := errors.New("policy not set")
	marked := errs.Mark(cause, errs.ErrPreconditionViolation)

	assert.True(t, errs.Is(marked, errs.ErrPreconditionViolation))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errs.ErrStoreOperationFailed))
}

func TestWrapKeepsMark(t *testing.T) {
	marked := errs.Mark(errs.New("disk full"), errs.ErrStoreOperationFailed)
	wrapped := errs.Wrap(marked, "persist customer")

	assert.True(t, errs.Is(wrapped, errs.ErrStoreOperationFailed))
	assert.Contains(t, wrapped.Error(), "persist customer")
	assert.Contains(t, wrapped.Error(), "disk full")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
