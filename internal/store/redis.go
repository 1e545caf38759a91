package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// channel carries change notifications between contexts sharing one Redis.
const channel = "tt:changes"

// Redis is the shared backend: every context (process, instance) pointed at
// the same server observes the same keys, and each write is announced on a
// pub/sub channel so the others can reconcile. Messages carry the writer's
// origin id and Subscribe drops messages whose origin matches this client's,
// which is what lets consumers assume "self-writes never notify".
type Redis struct {
	rdb    *redis.Client
	origin string

	mu   sync.Mutex
	subs []func(Event)
}

type changeMsg struct {
	Origin  string `json:"origin"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Removed bool   `json:"removed,omitempty"`
}

// OpenRedis verifies the connection and starts the change listener. The
// listener goroutine lives for the lifetime of ctx.
func OpenRedis(ctx context.Context, rdb *redis.Client) (*Redis, error) {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	origin, err := randomHex(16)
	if err != nil {
		return nil, err
	}
	r := &Redis{rdb: rdb, origin: origin}
	ps := rdb.Subscribe(ctx, channel)
	// Force the subscription before returning so no announcement published
	// after OpenRedis can be missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}
	go r.listen(ctx, ps)
	return r, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	return r.announce(ctx, changeMsg{Origin: r.origin, Key: key, Value: value})
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return r.announce(ctx, changeMsg{Origin: r.origin, Key: key, Removed: true})
}

func (r *Redis) Subscribe(fn func(Event)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}

// announce publishes the change. A publish failure is logged but does not
// fail the write: the value is durably stored and other contexts will catch
// up on their next rehydration.
func (r *Redis) announce(ctx context.Context, msg changeMsg) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := r.rdb.Publish(ctx, channel, b).Err(); err != nil {
		log.Printf("store: publish change for %q failed: %v", msg.Key, err)
	}
	return nil
}

func (r *Redis) listen(ctx context.Context, ps *redis.PubSub) {
	defer func() { _ = ps.Close() }()
	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var msg changeMsg
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				continue
			}
			if msg.Origin == r.origin {
				continue // own write
			}
			r.dispatch(Event{Key: msg.Key, Value: msg.Value, Removed: msg.Removed})
		}
	}
}

func (r *Redis) dispatch(ev Event) {
	r.mu.Lock()
	subs := append([]func(Event){}, r.subs...)
	r.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// randomHex returns a hex string built from n bytes of secure random data.
// It identifies this context on the change channel.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
