package worker

// Jobs the notification worker cannot deliver (SMTP down, guide without a
// usable address) are parked in a dead-letter list per source queue,
// keyed dlq:<queue>. Nothing retries them automatically: an operator
// inspects the list, fixes the cause and re-pushes the payload by hand.
// The /health endpoint reports the list depth.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry is what lands in the dead-letter list: the original job payload
// plus enough context to decide whether re-sending the turno email still
// makes sense.
type DLQEntry struct {
	OriginalQueue string          `json:"original_queue"`
	JobType       string          `json:"job_type"`
	Payload       json.RawMessage `json:"payload"`
	Reason        string          `json:"reason"`
	FailedAt      time.Time       `json:"failed_at"`
	Attempts      int             `json:"attempts"`
}

// SendToDLQ parks a failed job. Best-effort: a DLQ write failure is logged
// and the job is lost — the turno assignment itself already committed, only
// the email is gone.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	entry := DLQEntry{
		OriginalQueue: queue,
		JobType:       jobType,
		Payload:       payload,
		Reason:        reason,
		FailedAt:      time.Now().UTC(),
		Attempts:      attempts,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal entry")
		return
	}

	key := DLQPrefix + queue
	if err := rdb.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("dlq: push")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("job moved to dead letter queue")
}

// DLQLength reports the dead-letter depth for a queue; surfaced by /health.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
