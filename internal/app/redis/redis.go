package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"storefront/internal/app/config"
	"storefront/internal/app/session"
	"storefront/internal/app/view"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	servicePrefix = "storefront."
	sessionPrefix = servicePrefix + "session."

	maxUpdateRetries = 10
	retryBaseDelay   = 2 * time.Millisecond
	retryMaxDelay    = 50 * time.Millisecond
)

var _ session.Store = (*Client)(nil)

// Client - хранилище сессий просмотра в Redis. Ключи живут sessionTTL и продлеваются при каждом Get и Update
type Client struct {
	cfg        config.RedisConfig
	client     *redis.Client
	sessionTTL time.Duration
}

func New(ctx context.Context, cfg config.RedisConfig, sessionTTL time.Duration) (*Client, error) {
	client := &Client{
		cfg:        cfg,
		sessionTTL: sessionTTL,
	}

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})
	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	logrus.WithField("addr", redisClient.Options().Addr).Info("redis session store connected")
	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Get читает состояние и в той же транзакции продлевает TTL ключа
func (c *Client) Get(ctx context.Context, id string) (view.State, error) {
	key := sessionKey(id)

	var get *redis.StringCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		pipe.Expire(ctx, key, c.sessionTTL)
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return view.State{}, session.ErrNotFound
	}
	if err != nil {
		return view.State{}, fmt.Errorf("get session: %w", err)
	}

	data, err := get.Bytes()
	if err != nil {
		return view.State{}, fmt.Errorf("get session: %w", err)
	}
	state, err := decodeState(data)
	if err != nil {
		// следующий Update перезапишет ключ начальным состоянием
		logrus.WithError(err).WithField("session", id).Warn("unreadable view session")
		return view.State{}, session.ErrNotFound
	}
	return state, nil
}

// Update делает read-modify-write под WATCH; при конкурентной записи повторяет попытку
func (c *Client) Update(ctx context.Context, id string, init view.State, fn func(*view.State)) (view.State, error) {
	key := sessionKey(id)

	var result view.State
	txf := func(tx *redis.Tx) error {
		state := init
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if state, err = decodeState(data); err != nil {
				logrus.WithError(err).WithField("session", id).Warn("dropping unreadable view session")
				state = init
			}
		}

		fn(&state)

		encoded, err := encodeState(state)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, c.sessionTTL)
			return nil
		})
		if err == nil {
			result = state
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return view.State{}, fmt.Errorf("update session: %w", err)
			}
		}

		err := c.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			logrus.WithField("session", id).WithField("attempt", attempt+1).Debug("session update conflict, retrying")
			continue
		}
		return view.State{}, fmt.Errorf("update session: %w", err)
	}

	return view.State{}, fmt.Errorf("update session: %w", redis.TxFailedErr)
}

// backoff - экспоненциальная пауза со случайным разбросом в [d/2, d)
func backoff(attempt int) time.Duration {
	d := retryBaseDelay << (attempt - 1)
	if d > retryMaxDelay || d <= 0 {
		d = retryMaxDelay
	}
	return d/2 + rand.N(d/2)
}

func sleepBackoff(ctx context.Context, attempt int) error {
	timer := time.NewTimer(backoff(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func sessionKey(id string) string {
	return sessionPrefix + id
}

func encodeState(s view.State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (view.State, error) {
	var s view.State
	if err := json.Unmarshal(data, &s); err != nil {
		return view.State{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
