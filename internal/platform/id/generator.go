package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Generator creates opaque string IDs suitable for external references
// (media blob keys).
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// SequenceGenerator mints creation-timestamp-derived int64 ids for matches,
// pending matches and saved teams. Two mints inside the same millisecond bump
// by one so ids stay unique within a session.
type SequenceGenerator interface {
	NextID() int64
}

type TimestampGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{now: time.Now}
}

// NewTimestampGeneratorAt pins the clock, for tests.
func NewTimestampGeneratorAt(now func() time.Time) *TimestampGenerator {
	return &TimestampGenerator{now: now}
}

func (g *TimestampGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id
}
