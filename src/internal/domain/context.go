package domain

import (
	"errors"
	"log"
	"net"
)

// Greeting is the body served on the root route.
const Greeting = "Hello from Go!"

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = "8080"
)

var ErrInvalidPort = errors.New("invalid port")

type Config struct {
	Version string
	Host    string
	Port    string
}

// Addr returns the listen address, host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type Context struct {
	Config Config
	Logger *log.Logger
}
