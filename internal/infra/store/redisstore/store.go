package redisstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/infra"
	"racing-ticket-desk/internal/infra/converter"

	"github.com/redis/go-redis/v9"
)

const backend = "redis"

// Store appends one JSON document per customer to a single Redis list.
type Store struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func New(client *redis.Client, key string, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		key:    key,
		logger: logger,
	}
}

func (s *Store) Append(ctx context.Context, c *customer.Customer) error {
	payload, err := json.Marshal(converter.CustomerToRecord(c))
	if err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "encode customer", err)
	}
	if err := s.client.RPush(ctx, s.key, payload).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindDBFailure, "append customer", err)
	}
	return nil
}

func (s *Store) LoadAll(ctx context.Context) ([]*customer.Customer, error) {
	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDBFailure, "load customers", err)
	}

	recs := make([]converter.CustomerRecord, 0, len(items))
	for _, item := range items {
		var rec converter.CustomerRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "decode customer", err)
		}
		recs = append(recs, rec)
	}

	customers, err := converter.RecordsToCustomers(recs)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "convert stored customers", err)
	}
	return customers, nil
}

func (s *Store) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindDBFailure, "reset customers", err)
	}
	return nil
}
