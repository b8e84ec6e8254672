//go:build unit

package infra_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"racing-ticket-desk/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapStoreErr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cause := errors.New("connection refused")

	err := infra.WrapStoreErr(logger, "redis", infra.KindDBFailure, "append customer", cause)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindDecodeFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "redis DB_FAILURE: append customer")
	assert.Contains(t, buf.String(), "backend=redis")
	assert.Contains(t, buf.String(), "kind=DB_FAILURE")
}

func TestWrapStoreErr_WithoutCause(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	err := infra.WrapStoreErr(logger, "file", infra.KindIOFailure, "replace customer file", nil)

	assert.Equal(t, "file IO_FAILURE: replace customer file", err.Error())
	assert.True(t, infra.IsKind(err, infra.KindIOFailure))
}

func TestIsKind_OtherErrors(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindDBFailure))
}
