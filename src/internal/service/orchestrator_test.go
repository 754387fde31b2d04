package service

import (
	"bytes"
	"fmt"
	"log"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greeter/src/internal/domain"
)

func testContext(port string, out *bytes.Buffer) *domain.Context {
	return &domain.Context{
		Config: domain.Config{Version: "test", Host: "127.0.0.1", Port: port},
		Logger: log.New(out, "", 0),
	}
}

func TestRunPortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := fmt.Sprint(busy.Addr().(*net.TCPAddr).Port)

	var out bytes.Buffer
	err = CreateOrchestrator(testContext(port, &out)).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
	assert.NotContains(t, out.String(), "Listening on")
}

func TestRunStopsOnSignal(t *testing.T) {
	var out bytes.Buffer
	o := CreateOrchestrator(testContext("0", &out))
	o.signals <- syscall.SIGTERM

	done := make(chan error, 1)
	go func() { done <- o.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("orchestrator did not stop")
	}
	assert.Contains(t, out.String(), "Starting Greeter (Version: test)...")
	assert.Contains(t, out.String(), "Listening on port ")
	assert.Contains(t, out.String(), "Received terminated signal. Shutting down...")
}
