package api

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"greeter/src/internal/domain"
)

const readHeaderTimeout = 10 * time.Second

type Api struct {
	ctx    *domain.Context
	logger *log.Logger
}

func Create(ctx *domain.Context) *Api {
	return &Api{
		ctx:    ctx,
		logger: ctx.Logger,
	}
}

func (a *Api) Logger() *log.Logger {
	return a.logger
}

// Handler returns the router. Anything other than GET / gets chi's
// default 404 or 405.
func (a *Api) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", a.handleIndex)
	return r
}

// Listen binds the configured address and reports the bound port.
func (a *Api) Listen() (net.Listener, error) {
	addr := a.ctx.Config.Addr()
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	port := a.ctx.Config.Port
	if tcpAddr, ok := l.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcpAddr.Port)
	}
	a.logger.Printf("Listening on port %s", port)
	return l, nil
}

// Serve blocks until l fails or is closed.
func (a *Api) Serve(l net.Listener) error {
	server := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return server.Serve(l)
}

func (a *Api) Run() error {
	l, err := a.Listen()
	if err != nil {
		return err
	}
	return a.Serve(l)
}

func (a *Api) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(domain.Greeting)); err != nil {
		a.logger.Print("write:", err)
	}
}
