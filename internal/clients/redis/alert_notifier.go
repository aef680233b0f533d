package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/types"
)

// AlertNotifier pushes newly created alerts onto a Redis channel so the
// notification collaborator (out of process) can deliver them. Delivery
// itself is not this service's concern.
type AlertNotifier interface {
	Publish(ctx context.Context, alertas []*types.Alerta) error
	Close() error
}

type alertNotifier struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewAlertNotifier(log *logger.Logger) (AlertNotifier, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(os.Getenv("REDIS_ALERT_CHANNEL"))
	if ch == "" {
		ch = "alertas"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &alertNotifier{
		log:     log.With("service", "RedisAlertNotifier"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (n *alertNotifier) Publish(ctx context.Context, alertas []*types.Alerta) error {
	if n == nil || n.rdb == nil {
		return fmt.Errorf("alert notifier not initialized")
	}
	for _, alerta := range alertas {
		raw, err := json.Marshal(alerta)
		if err != nil {
			return err
		}
		if err := n.rdb.Publish(ctx, n.channel, raw).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (n *alertNotifier) Close() error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Close()
}
