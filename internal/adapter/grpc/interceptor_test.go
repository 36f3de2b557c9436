package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := LoggingInterceptor(zap.New(core))

	info := &grpc.UnaryServerInfo{
		FullMethod: "/cashcycle.v1.CashCycleService/ResolveNext",
	}

	t.Run("Success", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return "success", nil
		}

		resp, err := interceptor(context.Background(), "test-request", info, handler)
		require.NoError(t, err)
		assert.Equal(t, "success", resp)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "rpc handled", entries[0].Message)
		assert.Equal(t, zap.InfoLevel, entries[0].Level)

		fields := entries[0].ContextMap()
		assert.Equal(t, info.FullMethod, fields["method"])
		assert.Equal(t, codes.OK.String(), fields["code"])
	})

	t.Run("Failure", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, status.Error(codes.InvalidArgument, "invalid anchor_date format")
		}

		resp, err := interceptor(context.Background(), "test-request", info, handler)
		require.Error(t, err)
		assert.Nil(t, resp)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "rpc failed", entries[0].Message)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
		assert.Equal(t, codes.InvalidArgument.String(), entries[0].ContextMap()["code"])
	})

	t.Run("NonStatusErrorLogsUnknown", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, errors.New("boom")
		}

		_, err := interceptor(context.Background(), "test-request", info, handler)
		require.Error(t, err)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, codes.Unknown.String(), entries[0].ContextMap()["code"])
	})
}
