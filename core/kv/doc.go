// Package kv provides a durable string-keyed byte store with interchangeable backends.
//
// The Store interface deliberately stays minimal: get, set, delete on independent
// keys. There is no cross-key transactionality; a consumer that persists related
// state under multiple keys (for example the session store's identity and token
// slots) must treat partial presence as corruption and fail closed.
//
// # Backends
//
//   - Memory: map-backed, for tests and single-process use
//   - Redis: go-redis client wrapper with optional key prefix
//   - Postgres: single-table store over a pgx pool
//
// # Usage
//
//	store := kv.NewMemory()
//
//	if err := store.Set(ctx, "user", payload); err != nil {
//		return err
//	}
//
//	value, err := store.Get(ctx, "user")
//	if errors.Is(err, kv.ErrNotFound) {
//		// key absent
//	}
//
// Redis-backed store sharing a database with other applications:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	store := kv.NewRedis(client, kv.WithKeyPrefix("storefront:"))
package kv
