package infra

import (
	"errors"
	"log/slog"

	"racing-ticket-desk/internal/pkg/errs"
)

type StoreErrorKind string

// Infrastructure-specific error kinds
const (
	KindDBFailure     StoreErrorKind = "DB_FAILURE"
	KindDecodeFailure StoreErrorKind = "DECODE_FAILURE"
	KindIOFailure     StoreErrorKind = "IO_FAILURE"
)

// StoreError is returned by every customer store backend.
type StoreError struct {
	Backend string
	Kind    StoreErrorKind
	msg     string
	err     error // wrapped low-level error
}

func (e StoreError) Error() string {
	prefix := e.Backend + " " + string(e.Kind) + ": " + e.msg
	if e.err != nil {
		return prefix + ": " + e.err.Error()
	}
	return prefix
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(slogger *slog.Logger, backend string, kind StoreErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("backend", backend),
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Customer store error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Backend: backend, Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
