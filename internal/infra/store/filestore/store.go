package filestore

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/infra"
	"racing-ticket-desk/internal/infra/converter"
)

const backend = "file"

// Store keeps every registered customer in one gob-encoded file. Each Append
// reads the whole collection, adds the record and rewrites the file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

func (s *Store) Append(_ context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read()
	if err != nil {
		return err
	}
	recs = append(recs, converter.CustomerToRecord(c))
	return s.write(recs)
}

func (s *Store) LoadAll(_ context.Context) ([]*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read()
	if err != nil {
		return nil, err
	}
	customers, err := converter.RecordsToCustomers(recs)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "convert stored customers", err)
	}
	return customers, nil
}

// Reset leaves an empty file behind, which reads back as no customers.
func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(nil)
}

func (s *Store) read() ([]converter.CustomerRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindIOFailure, "read customer file", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var recs []converter.CustomerRecord
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&recs); err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "decode customer file", err)
	}
	return recs, nil
}

// write replaces the file through a temp file in the same directory so a
// crash never leaves a half-written collection behind.
func (s *Store) write(recs []converter.CustomerRecord) error {
	var buf bytes.Buffer
	if len(recs) > 0 {
		if err := gob.NewEncoder(&buf).Encode(recs); err != nil {
			return infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "encode customer file", err)
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindIOFailure, "create store directory", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindIOFailure, "create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, backend, infra.KindIOFailure, "write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, backend, infra.KindIOFailure, "close temp file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, backend, infra.KindIOFailure, "replace customer file", err)
	}
	return nil
}
