package errorcode

import (
	"maps"
	"net/http"
)

// Generic bucket numbers used when a status has no exact entry.
const (
	DefaultServerBucket = 599
	DefaultClientBucket = 499
)

// Table maps HTTP status codes to structured codes.
// A Table is read-only once built and safe for concurrent use.
type Table struct {
	prefix  string
	entries map[int]Code
	server  int
	client  int
}

// Option configures a Table.
type Option func(*Table)

// WithPrefix overrides the "E-REST" prefix for every code in the table.
func WithPrefix(prefix string) Option {
	return func(t *Table) {
		if prefix != "" {
			t.prefix = prefix
		}
	}
}

// WithEntry maps one exact status to a code number under the given subsystem.
func WithEntry(status int, subsystem string, number int) Option {
	return func(t *Table) {
		t.entries[status] = Code{Subsystem: subsystem, Number: number}
	}
}

// WithServerBucket sets the number used for unclassified server errors.
func WithServerBucket(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.server = n
		}
	}
}

// WithClientBucket sets the number used for unclassified client errors.
func WithClientBucket(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.client = n
		}
	}
}

// WithoutEntries drops the default exact entries so that every status
// resolves through the generic buckets.
func WithoutEntries() Option {
	return func(t *Table) {
		clear(t.entries)
	}
}

// defaultEntries lists the client statuses that get their own code.
// Server statuses are deliberately absent: every 5xx shares one bucket.
var defaultEntries = []int{
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusMethodNotAllowed,
	http.StatusNotAcceptable,
	http.StatusConflict,
	http.StatusUnsupportedMediaType,
	http.StatusUnprocessableEntity,
}

// NewTable builds a table from the defaults and the given options.
func NewTable(opts ...Option) *Table {
	t := &Table{
		prefix:  DefaultPrefix,
		entries: make(map[int]Code, len(defaultEntries)),
		server:  DefaultServerBucket,
		client:  DefaultClientBucket,
	}
	for _, status := range defaultEntries {
		t.entries[status] = Code{Subsystem: SubsystemClient, Number: status}
	}
	for _, opt := range opts {
		opt(t)
	}
	for status, c := range t.entries {
		c.Prefix = t.prefix
		t.entries[status] = c
	}
	return t
}

// Config holds the environment-driven settings of a Table.
type Config struct {
	Prefix       string `env:"ERROR_CODE_PREFIX" envDefault:"E-REST"`
	ServerBucket int    `env:"ERROR_CODE_SERVER_BUCKET" envDefault:"599"`
	ClientBucket int    `env:"ERROR_CODE_CLIENT_BUCKET" envDefault:"499"`
}

// NewFromConfig creates a Table from cfg. Zero values keep the defaults.
func NewFromConfig(cfg Config, opts ...Option) *Table {
	configOpts := []Option{
		WithPrefix(cfg.Prefix),
		WithServerBucket(cfg.ServerBucket),
		WithClientBucket(cfg.ClientBucket),
	}
	return NewTable(append(configOpts, opts...)...)
}

// Get resolves the code for status: exact entry first, then the 4xx or 5xx
// bucket. Anything outside 400-599 is reported as an unclassified server error.
func (t *Table) Get(status int) Code {
	if c, ok := t.entries[status]; ok {
		return c
	}
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return Code{Prefix: t.prefix, Subsystem: SubsystemClient, Number: t.client}
	}
	return t.ServerBucket()
}

// MessageKeys returns the catalog keys for the message of status, most
// specific first. They use the default prefix and bucket numbers so that
// catalogs keep working when the rendered codes are reconfigured:
//
//	table := NewTable(WithPrefix("E-SHOP"), WithServerBucket(590))
//	table.Get(502).String()  // "E-SHOP-SERVER#590"
//	table.MessageKeys(502)   // ["E-REST-SERVER#599"]
func (t *Table) MessageKeys(status int) []string {
	var keys []string
	if c, ok := t.entries[status]; ok {
		keys = append(keys, New(c.Subsystem, c.Number).String())
	}
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return append(keys, New(SubsystemClient, DefaultClientBucket).String())
	}
	return append(keys, New(SubsystemServer, DefaultServerBucket).String())
}

// ServerBucket returns the generic code for unclassified server errors.
func (t *Table) ServerBucket() Code {
	return Code{Prefix: t.prefix, Subsystem: SubsystemServer, Number: t.server}
}

// Entries returns a copy of the exact entries.
func (t *Table) Entries() map[int]Code {
	return maps.Clone(t.entries)
}

var defaultTable = NewTable()

// Default returns the process-wide table built with default options.
func Default() *Table {
	return defaultTable
}

// Get resolves status against the default table.
func Get(status int) Code {
	return defaultTable.Get(status)
}
