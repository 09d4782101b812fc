package errmsg

import (
	"github.com/google/uuid"

	"github.com/jse-go/restkit/pkg/errorcode"
)

// Resolver returns the message template for key in lang, walking whatever
// fallback chain it implements. *i18n.Catalog satisfies it.
type Resolver interface {
	Lookup(lang, key string) (string, bool)
}

// Formatter substitutes named placeholders in a template.
type Formatter func(tmpl string, args ...string) string

// Builder assembles an ErrorMessage step by step:
//
//	msg := errmsg.Create(http.StatusServiceUnavailable).
//		ID().
//		Code(table.Get(http.StatusServiceUnavailable)).
//		Resolve("ja", catalog).
//		Get()
//
// A Builder is meant for one message and is not safe for concurrent use.
type Builder struct {
	msg       ErrorMessage
	keys      []string
	args      []string
	formatter Formatter
	newID     func() string
}

// Create starts a message for status.
func Create(status int) *Builder {
	return &Builder{
		msg:   ErrorMessage{Status: status},
		newID: func() string { return uuid.New().String() },
	}
}

// WithIDGenerator replaces the uuid v4 generator, mostly for tests.
func (b *Builder) WithIDGenerator(gen func() string) *Builder {
	if gen != nil {
		b.newID = gen
	}
	return b
}

// WithFormatter sets the placeholder formatter used by Resolve.
func (b *Builder) WithFormatter(f Formatter) *Builder {
	b.formatter = f
	return b
}

// ID allocates a fresh correlation id.
func (b *Builder) ID() *Builder {
	b.msg.ID = b.newID()
	return b
}

// Code sets the structured code.
func (b *Builder) Code(c errorcode.Code) *Builder {
	b.msg.Code = c.String()
	return b
}

// Keys sets the catalog keys Resolve tries, in order. Empty keys are
// skipped. Without keys Resolve looks up the code itself.
func (b *Builder) Keys(keys ...string) *Builder {
	for _, k := range keys {
		if k != "" {
			b.keys = append(b.keys, k)
		}
	}
	return b
}

// Args adds key/value pairs for placeholder substitution.
func (b *Builder) Args(kv ...string) *Builder {
	b.args = append(b.args, kv...)
	return b
}

// Message sets the message directly, skipping resolution.
func (b *Builder) Message(msg string) *Builder {
	b.msg.Message = msg
	return b
}

// Resolve looks the keys (or the code) up in r for lang and formats the
// first template found. It never fails: a nil resolver, missing keys or a
// panicking resolver all yield DefaultMessage.
func (b *Builder) Resolve(lang string, r Resolver) *Builder {
	b.msg.Message = b.resolve(lang, r)
	return b
}

func (b *Builder) resolve(lang string, r Resolver) (msg string) {
	defer func() {
		if recover() != nil {
			msg = DefaultMessage
		}
	}()

	if r == nil {
		return DefaultMessage
	}
	keys := b.keys
	if len(keys) == 0 && b.msg.Code != "" {
		keys = []string{b.msg.Code}
	}
	for _, key := range keys {
		tmpl, ok := r.Lookup(lang, key)
		if !ok || tmpl == "" {
			continue
		}
		if b.formatter != nil && len(b.args) > 0 {
			return b.formatter(tmpl, b.args...)
		}
		return tmpl
	}
	return DefaultMessage
}

// Get returns the assembled message. Missing pieces are filled in: an id
// is allocated, the code defaults to the unclassified server bucket and the
// message to DefaultMessage.
func (b *Builder) Get() ErrorMessage {
	msg := b.msg
	if msg.ID == "" {
		msg.ID = b.newID()
	}
	if msg.Code == "" {
		msg.Code = errorcode.Default().ServerBucket().String()
	}
	if msg.Message == "" {
		msg.Message = DefaultMessage
	}
	return msg
}
