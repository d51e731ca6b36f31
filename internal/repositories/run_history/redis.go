package runhistory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	// Key pattern: run_history:{profile_id}
	historyKeyPrefix = "run_history:"

	// DefaultCap is how many records a profile keeps.
	DefaultCap = 20
	// DefaultTTL expires a history nobody has played into for a while.
	DefaultTTL = 30 * 24 * time.Hour

	errRecordNil      = "record cannot be nil"
	errProfileIDEmpty = "profile ID cannot be empty"
	errRunIDEmpty     = "run ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// Cap defaults to DefaultCap
	Cap int
	// TTL defaults to DefaultTTL
	TTL time.Duration
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
	if c.Cap < 0 {
		vb.Field("Cap", "must not be negative")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	keep   int
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for run history
func NewRedis(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	repo := &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		keep:   cfg.Cap,
		ttl:    cfg.TTL,
	}
	if repo.keep == 0 {
		repo.keep = DefaultCap
	}
	if repo.ttl == 0 {
		repo.ttl = DefaultTTL
	}
	return repo, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes the record onto the head of the profile's list, trims the
// tail and refreshes the expiry in one transaction.
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.Record.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	rec := *input.Record
	rec.EndedAt = r.clock.Now()

	data, err := json.Marshal(&rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal run record %s", rec.RunID)
	}

	key := buildKey(rec.ProfileID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(r.keep-1))
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append run record %s", rec.RunID)
	}

	return &AppendOutput{Record: &rec}, nil
}

// List reads the newest records first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	raw, err := r.client.LRange(ctx, buildKey(input.ProfileID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read run history for %s", input.ProfileID)
	}

	records := make([]*Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal run record for %s", input.ProfileID)
		}
		records = append(records, &rec)
	}

	return &ListOutput{Records: records}, nil
}

func buildKey(profileID string) string {
	return historyKeyPrefix + profileID
}
