package errorcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix is prepended to every code rendered by this package.
const DefaultPrefix = "E-REST"

// Subsystems used by the default table.
const (
	SubsystemServer = "SERVER"
	SubsystemClient = "CLIENT"
)

// Code is a structured error code of the form <prefix>-<subsystem>#<number>,
// e.g. "E-REST-SERVER#599".
type Code struct {
	Prefix    string
	Subsystem string
	Number    int
}

// New creates a code with the default prefix.
func New(subsystem string, number int) Code {
	return Code{Prefix: DefaultPrefix, Subsystem: subsystem, Number: number}
}

// String renders the code in its wire format.
func (c Code) String() string {
	prefix := c.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + "-" + c.Subsystem + "#" + strconv.Itoa(c.Number)
}

// IsZero reports whether the code was never set.
func (c Code) IsZero() bool {
	return c.Subsystem == "" && c.Number == 0
}

// MarshalText implements encoding.TextMarshaler so codes serialize as strings.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse is the inverse of Code.String.
// The prefix is everything before the last '-' preceding the '#'.
func Parse(s string) (Code, error) {
	hash := strings.LastIndexByte(s, '#')
	if hash <= 0 || hash == len(s)-1 {
		return Code{}, errors.Join(ErrMalformedCode, fmt.Errorf("missing number in %q", s))
	}
	n, err := strconv.Atoi(s[hash+1:])
	if err != nil {
		return Code{}, errors.Join(ErrMalformedCode, err)
	}
	head := s[:hash]
	dash := strings.LastIndexByte(head, '-')
	if dash <= 0 || dash == len(head)-1 {
		return Code{}, errors.Join(ErrMalformedCode, fmt.Errorf("missing subsystem in %q", s))
	}
	return Code{Prefix: head[:dash], Subsystem: head[dash+1:], Number: n}, nil
}
