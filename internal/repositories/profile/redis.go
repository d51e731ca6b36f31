package profile

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	// Key pattern: profile:{id}
	profileKeyPrefix = "profile:"
	// profileIndexKey is a set of every stored profile id
	profileIndexKey = "profiles"

	errProfileNil = "profile cannot be nil"
	errIDEmpty    = "profile ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed profile repository
func NewRedis(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid profile repository config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get loads a profile by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, profileKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get profile from Redis")
	}

	var p entities.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}

	return &GetOutput{Profile: &p}, nil
}

// Save stores the profile and indexes its id in one transaction
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	p := *input.Profile
	now := r.clock.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := json.Marshal(&p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, profileKey(p.ID), data, 0)
	pipe.SAdd(ctx, profileIndexKey, p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}

	return &SaveOutput{Profile: &p}, nil
}

// Delete removes the profile and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, profileKey(input.ID))
	pipe.SRem(ctx, profileIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("profile %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// List returns every indexed profile id
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, profileIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list profiles")
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}

// Verify walks every profile key and the index. Unknown fields are
// tolerated; only data that fails to decode counts as corrupt.
func (r *redisRepository) Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, error) {
	out := &VerifyOutput{}
	stored := make(map[string]bool)

	iter := r.client.Scan(ctx, 0, profileKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, profileKeyPrefix)
		stored[id] = true
		out.Checked++

		data, err := r.client.Get(ctx, key).Result()
		if err == redis.Nil {
			// deleted mid-scan
			delete(stored, id)
			out.Checked--
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var p entities.Profile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			out.Corrupt = append(out.Corrupt, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan profiles")
	}

	indexed, err := r.client.SMembers(ctx, profileIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile index")
	}
	for _, id := range indexed {
		if !stored[id] {
			out.Dangling = append(out.Dangling, id)
		}
	}

	sort.Strings(out.Corrupt)
	sort.Strings(out.Dangling)

	if !input.Fix || (len(out.Corrupt) == 0 && len(out.Dangling) == 0) {
		return out, nil
	}

	pipe := r.client.TxPipeline()
	for _, id := range out.Corrupt {
		pipe.Del(ctx, profileKey(id))
		pipe.SRem(ctx, profileIndexKey, id)
	}
	for _, id := range out.Dangling {
		pipe.SRem(ctx, profileIndexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to repair profiles")
	}
	out.Fixed = true

	return out, nil
}

func profileKey(id string) string {
	return profileKeyPrefix + id
}
