// Package id provides ULID-based identifiers for bridge instances and spans.
//
// IDs are lexicographically sortable and carry a short type prefix so they
// read well in logs:
//
//	fw_01HZX3...   framework instance created by the factory
//	trace_01HZ...  trace covering one host call
//	span_01HZ...   single intercepted or forwarded operation
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// FrameworkID identifies a framework handle created by the factory
type FrameworkID string

// TraceID identifies a trace
type TraceID string

// SpanID identifies a span within a trace
type SpanID string

const (
	FrameworkPrefix = "fw"
	TracePrefix     = "trace"
	SpanPrefix      = "span"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source,
// for deterministic tests
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewFrameworkID generates a framework instance ID
func NewFrameworkID() FrameworkID {
	return FrameworkID(Default().GenerateWithPrefix(FrameworkPrefix))
}

// NewTraceID generates a trace ID
func NewTraceID() TraceID {
	return TraceID(Default().GenerateWithPrefix(TracePrefix))
}

// NewSpanID generates a span ID
func NewSpanID() SpanID {
	return SpanID(Default().GenerateWithPrefix(SpanPrefix))
}

func (id FrameworkID) String() string { return string(id) }
func (id TraceID) String() string     { return string(id) }
func (id SpanID) String() string      { return string(id) }

// Timestamp extracts the creation time from a prefixed or bare ULID string
func Timestamp(id string) (time.Time, error) {
	raw := id
	if n := len(raw); n > ulid.EncodedSize {
		raw = raw[n-ulid.EncodedSize:]
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
