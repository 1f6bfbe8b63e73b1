package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLoggerProcessHookForwardsCommand(t *testing.T) {
	hook := NewRedisLogger()

	var seen redis.Cmder
	wrapped := hook.ProcessHook(func(_ context.Context, cmd redis.Cmder) error {
		seen = cmd
		return nil
	})

	cmd := redis.NewStatusCmd(context.Background(), "set", "k", "v")
	require.NoError(t, wrapped(context.Background(), cmd))
	assert.Same(t, cmd, seen)
}

func TestRedisLoggerProcessHookKeepsErrors(t *testing.T) {
	hook := NewRedisLogger()

	wantErr := errors.New("connection reset")
	wrapped := hook.ProcessHook(func(context.Context, redis.Cmder) error {
		return wantErr
	})
	err := wrapped(context.Background(), redis.NewCmd(context.Background(), "get", "k"))
	assert.ErrorIs(t, err, wantErr)

	// 未命中原样透传，不落错误日志
	wrapped = hook.ProcessHook(func(context.Context, redis.Cmder) error {
		return redis.Nil
	})
	err = wrapped(context.Background(), redis.NewCmd(context.Background(), "get", "missing"))
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisLoggerPipelineHookKeepsErrors(t *testing.T) {
	hook := NewRedisLogger()

	wantErr := errors.New("pipeline broken")
	wrapped := hook.ProcessPipelineHook(func(context.Context, []redis.Cmder) error {
		return wantErr
	})
	err := wrapped(context.Background(), []redis.Cmder{redis.NewCmd(context.Background(), "get", "k")})
	assert.ErrorIs(t, err, wantErr)
}
