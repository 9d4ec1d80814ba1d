package references

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// RedisLoader reads reference tables from Redis. Each table is a hash of
// id -> display name plus a list holding the ids in catalog order.
type RedisLoader struct {
	client redis.UniversalClient
}

// NewRedisLoader creates a Redis-backed loader
func NewRedisLoader(client redis.UniversalClient) *RedisLoader {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &RedisLoader{client: client}
}

func tableKey(t reference.Table) string {
	return fmt.Sprintf("reference:%s", t)
}

func orderKey(t reference.Table) string {
	return fmt.Sprintf("reference:%s:ids", t)
}

// Load implements Loader. Tables are fetched concurrently; the catalog is
// only returned once every table has loaded.
func (r *RedisLoader) Load(ctx context.Context) (*reference.Catalog, error) {
	tables := reference.Tables()
	loaded := make([][]reference.Entry, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tables {
		g.Go(func() error {
			entries, err := r.loadTable(gctx, t)
			if err != nil {
				return dnderr.Wrapf(err, "failed to load reference table %s", t)
			}
			loaded[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := reference.NewCatalog()
	for i, t := range tables {
		catalog.Add(t, loaded[i]...)
	}
	if catalog.Len() == 0 {
		return nil, dnderr.NotFound("no reference data stored in redis")
	}

	log.Printf("Loaded %d reference entries from redis", catalog.Len())
	return catalog, nil
}

// loadTable returns the entries in list order. Hash entries missing from
// the list follow, sorted by id.
func (r *RedisLoader) loadTable(ctx context.Context, t reference.Table) ([]reference.Entry, error) {
	names, err := r.client.HGetAll(ctx, tableKey(t)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to read reference hash")
	}
	ids, err := r.client.LRange(ctx, orderKey(t), 0, -1).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to read reference order")
	}

	entries := make([]reference.Entry, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, id := range ids {
		name, ok := names[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		entries = append(entries, reference.Entry{ID: id, DisplayName: name})
	}

	var rest []string
	for id := range names {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		entries = append(entries, reference.Entry{ID: id, DisplayName: names[id]})
	}

	return entries, nil
}

// Publish replaces the stored tables with the contents of catalog
func (r *RedisLoader) Publish(ctx context.Context, catalog *reference.Catalog) error {
	if catalog == nil {
		return dnderr.InvalidArgument("catalog cannot be nil")
	}

	pipe := r.client.Pipeline()
	for _, t := range reference.Tables() {
		pipe.Del(ctx, tableKey(t), orderKey(t))

		entries := catalog.Entries(t)
		if len(entries) == 0 {
			continue
		}

		fields := make([]any, 0, 2*len(entries))
		ids := make([]any, 0, len(entries))
		for _, e := range entries {
			fields = append(fields, e.ID, e.DisplayName)
			ids = append(ids, e.ID)
		}
		pipe.HSet(ctx, tableKey(t), fields...)
		pipe.RPush(ctx, orderKey(t), ids...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to publish reference data")
	}

	log.Printf("Published %d reference entries to redis", catalog.Len())
	return nil
}
