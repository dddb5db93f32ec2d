package bootstrap_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"freshbit/internal/bootstrap"
	"freshbit/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestServe_GracefulShutdownIsAudited(t *testing.T) {
	audit := &recordingAudit{}
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := bootstrap.Serve(ctx, srv, time.Second, audit)
	require.NoError(t, err)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	assert.Equal(t, "127.0.0.1:0", audit.entries[0].Meta["addr"])
}

func TestServe_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	audit := &recordingAudit{}
	srv := &http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}

	err = bootstrap.Serve(context.Background(), srv, time.Second, audit)
	assert.Error(t, err)
	assert.Empty(t, audit.entries)
}

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-7")
	l.Log(ctx, bootstrap.AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye"})

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "rid-7", fields["request_id"])
	assert.NotContains(t, fields, "meta")
}
