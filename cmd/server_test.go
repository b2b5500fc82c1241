package cmd

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAPIServer_ShutsDownWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- APIServer(ctx, http.NotFoundHandler(), "0", time.Second, zaptest.NewLogger(t))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestAPIServer_ReportsListenError(t *testing.T) {
	err := APIServer(context.Background(), http.NotFoundHandler(), "not-a-port", time.Second, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}
