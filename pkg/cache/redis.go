package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Pool tunes the go-redis connection pool. Zero fields keep DefaultPool values.
type Pool struct {
	Size        int
	MinIdle     int
	DialTimeout time.Duration
	IOTimeout   time.Duration
	PingTimeout time.Duration
}

// DefaultPool suits one server or worker process talking to a single Redis.
var DefaultPool = Pool{
	Size:        10,
	MinIdle:     2,
	DialTimeout: 5 * time.Second,
	IOTimeout:   3 * time.Second,
	PingTimeout: 2 * time.Second,
}

func (p Pool) withDefaults() Pool {
	if p.Size <= 0 {
		p.Size = DefaultPool.Size
	}
	if p.MinIdle <= 0 {
		p.MinIdle = DefaultPool.MinIdle
	}
	if p.DialTimeout <= 0 {
		p.DialTimeout = DefaultPool.DialTimeout
	}
	if p.IOTimeout <= 0 {
		p.IOTimeout = DefaultPool.IOTimeout
	}
	if p.PingTimeout <= 0 {
		p.PingTimeout = DefaultPool.PingTimeout
	}
	return p
}

// RedisClient is the shared connection used by ItemCache.
type RedisClient struct {
	client *redis.Client
}

// Connect parses url, applies pool and fails unless Redis answers a ping
// within pool.PingTimeout. Every command is counted in the
// shareit.cache.commands metric.
func Connect(ctx context.Context, url string, pool Pool) (*RedisClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: parse redis url: %w", err)
	}
	pool = pool.withDefaults()
	opts.PoolSize = pool.Size
	opts.MinIdleConns = pool.MinIdle
	opts.MaxRetries = 3
	opts.DialTimeout = pool.DialTimeout
	opts.ReadTimeout = pool.IOTimeout
	opts.WriteTimeout = pool.IOTimeout
	opts.PoolTimeout = pool.IOTimeout + time.Second

	rdb := redis.NewClient(opts)
	hook, err := newCommandMetrics()
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}
	rdb.AddHook(hook)

	pingCtx, cancel := context.WithTimeout(ctx, pool.PingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: ping %s: %w", opts.Addr, err)
	}
	return &RedisClient{client: rdb}, nil
}

func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: ping: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

// Client exposes the underlying go-redis client.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// commandMetrics counts Redis commands by name and outcome. A key miss
// (redis.Nil) is recorded as outcome=miss, not as an error.
type commandMetrics struct {
	commands metric.Int64Counter
}

func newCommandMetrics() (*commandMetrics, error) {
	c, err := otel.Meter("github.com/ghuser/shareit/pkg/cache").Int64Counter(
		"shareit.cache.commands",
		metric.WithDescription("Redis commands issued by the item cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("cache: command counter: %w", err)
	}
	return &commandMetrics{commands: c}, nil
}

func (m *commandMetrics) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (m *commandMetrics) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		m.record(ctx, cmd.Name(), err)
		return err
	}
}

func (m *commandMetrics) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		for _, cmd := range cmds {
			m.record(ctx, cmd.Name(), cmd.Err())
		}
		return err
	}
}

func (m *commandMetrics) record(ctx context.Context, name string, err error) {
	m.commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", name),
		attribute.String("outcome", outcome(err)),
	))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, redis.Nil):
		return "miss"
	default:
		return "error"
	}
}
