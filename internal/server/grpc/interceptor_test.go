package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/acquisitions/internal/logging"
)

type recordingLogger struct {
	logging.Nop
	mu      sync.Mutex
	entries [][]any
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, append([]any{msg}, args...))
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	log := &recordingLogger{}
	s := &GRPCServer{logger: log}
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := s.loggingInterceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	require.Len(t, log.entries, 1)
	assert.Contains(t, log.entries[0], "/grpc.health.v1.Health/Check")
	assert.Contains(t, log.entries[0], codes.OK.String())
}

func TestLoggingInterceptor_KeepsHandlerError(t *testing.T) {
	log := &recordingLogger{}
	s := &GRPCServer{logger: log}
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	want := status.Error(codes.NotFound, "unknown service")

	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, want
	})

	assert.True(t, errors.Is(err, want))
	require.Len(t, log.entries, 1)
	assert.Contains(t, log.entries[0], codes.NotFound.String())
}
