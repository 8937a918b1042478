package redislog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes generation events to a Redis LIST (e.g. "logs:onboarding")
// and trims it to a max length. Every method is a no-op when the client is
// nil, so the app runs fine with the sink disabled.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:onboarding"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
}

// New creates a Redis logger over a LIST. rdb may be nil (sink disabled).
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention}
}

// log pushes an entry as JSON -> LPUSH; then LTRIM; then EXPIRE.
// Best effort: a broken Redis must never fail a user's PDF request.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return // no-op if logger not initialized
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  time.Now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, string(b)).Err()
	_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

// Convenience helpers

func (l *Logger) Info(msg string, meta map[string]string)  { l.log("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }
