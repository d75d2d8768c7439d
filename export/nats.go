package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/Brannonj96/RandomizeProjectMembers/internal/logging"
	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// NATSPublisher publishes finished rosters to a NATS JetStream KV bucket.
//
// Each publish overwrites the value under the configured key with the full
// roster as JSON (an array of {project, members} groups in project input
// order), so watchers always observe a complete, consistent assignment.
type NATSPublisher struct {
	kv     jetstream.KeyValue
	key    string
	logger types.Logger
}

// NewNATSPublisher creates a roster publisher.
//
// Parameters:
//   - kv: JetStream KV bucket to publish into
//   - key: Key the roster is stored under (e.g., "roster.current")
//   - logger: Logger for publish events (nil uses the slog default)
//
// Returns:
//   - *NATSPublisher: A new publisher instance
func NewNATSPublisher(kv jetstream.KeyValue, key string, logger types.Logger) *NATSPublisher {
	if logger == nil {
		logger = logging.NewSlogDefault()
	}

	return &NATSPublisher{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// Publish writes the roster to the KV bucket.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - roster: Finished assignment (must not be nil)
//
// Returns:
//   - error: ErrPublishFailed wrapped with the underlying KV error
func (p *NATSPublisher) Publish(ctx context.Context, roster *types.Roster) error {
	groups := roster.Groups()
	payload, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("%w: encoding roster: %w", types.ErrPublishFailed, err)
	}

	rev, err := p.kv.Put(ctx, p.key, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	p.logger.Info("roster published",
		"key", p.key, "groups", len(groups), "revision", rev)

	return nil
}
