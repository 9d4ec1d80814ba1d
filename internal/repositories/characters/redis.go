package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// Data is the stored form of a draft
type Data struct {
	ID        string             `json:"id"`
	OwnerID   string             `json:"owner_id"`
	Survivor  character.Survivor `json:"survivor"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider

	// DraftTTL expires drafts that are not updated. Zero keeps them forever.
	DraftTTL time.Duration
}

// NewRedisRepository creates a Redis-backed draft repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = systemTime{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          cfg.DraftTTL,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("survivor:%s", id)
}

func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:survivors", ownerID)
}

// Create stores a new draft
func (r *redisRepo) Create(ctx context.Context, survivor *character.Survivor) error {
	if survivor == nil {
		return dnderr.InvalidArgument("survivor cannot be nil")
	}
	if survivor.CharacterID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(survivor.CharacterID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to check survivor existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("survivor with ID '%s' already exists", survivor.CharacterID).
			WithMeta("character_id", survivor.CharacterID)
	}

	now := r.timeProvider.Now()
	return r.write(ctx, &Data{
		ID:        survivor.CharacterID,
		OwnerID:   survivor.OwnerID,
		Survivor:  survivor.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}, "")
}

// Get retrieves a draft by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Survivor, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	survivor := data.Survivor
	return &survivor, nil
}

// ListByOwner retrieves all drafts of an owner. Index entries pointing at
// drafts that no longer exist are skipped.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*character.Survivor, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list survivor IDs")
	}

	found := make([]*character.Survivor, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			survivor, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				log.Printf("Skipping stale survivor %s in owner index %s", id, ownerID)
				return nil
			}
			if err != nil {
				return dnderr.Wrapf(err, "failed to get survivor %s", id)
			}
			found[i] = survivor
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	survivors := make([]*character.Survivor, 0, len(found))
	for _, s := range found {
		if s != nil {
			survivors = append(survivors, s)
		}
	}
	return survivors, nil
}

// Update replaces an existing draft, moving it between owner indexes when
// the owner changed.
func (r *redisRepo) Update(ctx context.Context, survivor *character.Survivor) error {
	if survivor == nil {
		return dnderr.InvalidArgument("survivor cannot be nil")
	}

	existing, err := r.getData(ctx, survivor.CharacterID)
	if err != nil {
		return err
	}

	previousOwner := ""
	if existing.OwnerID != survivor.OwnerID {
		previousOwner = existing.OwnerID
	}

	return r.write(ctx, &Data{
		ID:        survivor.CharacterID,
		OwnerID:   survivor.OwnerID,
		Survivor:  survivor.Clone(),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: r.timeProvider.Now(),
	}, previousOwner)
}

// Delete removes a draft and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	existing, err := r.getData(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	if existing.OwnerID != "" {
		pipe.SRem(ctx, r.ownerKey(existing.OwnerID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete survivor")
	}

	return nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("survivor with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get survivor")
	}

	var data Data
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal survivor")
	}
	return &data, nil
}

// write stores data and its owner index entry in one pipeline. When
// previousOwner is set the draft is removed from that owner's index.
func (r *redisRepo) write(ctx context.Context, data *Data, previousOwner string) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal survivor")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.ID), string(jsonData), r.ttl)
	if previousOwner != "" {
		pipe.SRem(ctx, r.ownerKey(previousOwner), data.ID)
	}
	if data.OwnerID != "" {
		pipe.SAdd(ctx, r.ownerKey(data.OwnerID), data.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to store survivor")
	}

	return nil
}
