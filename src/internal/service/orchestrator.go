package service

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"greeter/src/internal/api"
	"greeter/src/internal/domain"
)

type Orchestrator struct {
	ctx     *domain.Context
	signals chan os.Signal
}

func CreateOrchestrator(ctx *domain.Context) *Orchestrator {
	return &Orchestrator{
		ctx:     ctx,
		signals: make(chan os.Signal, 1),
	}
}

// Run binds the listener, serves, and blocks until SIGINT/SIGTERM or a
// serve failure. A bind failure is returned before anything is served.
func (o *Orchestrator) Run() error {
	server := api.Create(o.ctx)
	logger := server.Logger()
	logger.Printf("Starting Greeter (Version: %s)...", o.ctx.Config.Version)

	l, err := server.Listen()
	if err != nil {
		return err
	}
	defer l.Close()

	signal.Notify(o.signals, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(o.signals)

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(l)
	}()

	select {
	case sig := <-o.signals:
		logger.Printf("Received %s signal. Shutting down...", sig)
		return nil
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	}
}
