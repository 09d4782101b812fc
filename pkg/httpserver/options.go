package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Option configures a Server. Invalid values do not panic; they are
// collected and reported by Run as ErrInvalidOption.
type Option func(*config)

// StartHook is called once the listener is bound, with the actual address.
type StartHook func(ctx context.Context, addr net.Addr)

// StopHook is called after the server has drained.
type StopHook func(ctx context.Context)

func (c *config) reject(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidOption}, args...)...))
}

func timeout(name string, d time.Duration, set func(*config)) Option {
	return func(c *config) {
		if d <= 0 {
			c.reject("%s timeout must be positive, got %s", name, d)
			return
		}
		set(c)
	}
}

// WithAddr sets the listen address. ":0" picks a free port, see Server.Addr.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr == "" {
			c.reject("empty listen address")
			return
		}
		c.addr = addr
	}
}

// WithReadTimeout limits reading a whole request, body included.
func WithReadTimeout(d time.Duration) Option {
	return timeout("read", d, func(c *config) { c.readTimeout = d })
}

// WithWriteTimeout limits writing the response.
func WithWriteTimeout(d time.Duration) Option {
	return timeout("write", d, func(c *config) { c.writeTimeout = d })
}

// WithIdleTimeout limits how long a keep-alive connection waits for the
// next request.
func WithIdleTimeout(d time.Duration) Option {
	return timeout("idle", d, func(c *config) { c.idleTimeout = d })
}

// WithShutdownTimeout bounds the drain of in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return timeout("shutdown", d, func(c *config) { c.shutdownTimeout = d })
}

// WithServer serves through srv. Its Handler is replaced on Run; timeouts
// and address already set on it win over options.
func WithServer(srv *http.Server) Option {
	return func(c *config) {
		if srv == nil {
			c.reject("nil *http.Server")
			return
		}
		c.server = srv
	}
}

// WithLogger sets the logger for lifecycle events and net/http errors.
// Nil keeps the server silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook adds h to the hooks run after the listener is bound.
func WithStartHook(h StartHook) Option {
	return func(c *config) {
		if h == nil {
			c.reject("nil start hook")
			return
		}
		c.startHooks = append(c.startHooks, h)
	}
}

// WithStopHook adds h to the hooks run after shutdown.
func WithStopHook(h StopHook) Option {
	return func(c *config) {
		if h == nil {
			c.reject("nil stop hook")
			return
		}
		c.stopHooks = append(c.stopHooks, h)
	}
}
