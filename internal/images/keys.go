package images

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// SanitizeFileName replaces every rune outside [A-Za-z0-9.-] with '_'.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}

// KeyFromURL returns the final '/'-delimited path segment of a public file URL,
// taken verbatim. Query string and fragment are ignored. It returns "" when
// the URL has no trailing segment.
func KeyFromURL(publicURL string) string {
	if i := strings.IndexAny(publicURL, "?#"); i >= 0 {
		publicURL = publicURL[:i]
	}
	return publicURL[strings.LastIndex(publicURL, "/")+1:]
}

// KeyGenerator derives storage keys of the form "<unix-millis>-<sanitized name>".
// Timestamps are strictly increasing per generator, so two keys from the same
// generator never collide even when the clock has not advanced.
type KeyGenerator struct {
	now  func() time.Time
	last atomic.Int64
}

// NewKeyGenerator creates a generator reading time from now, or time.Now when nil.
func NewKeyGenerator(now func() time.Time) *KeyGenerator {
	if now == nil {
		now = time.Now
	}
	return &KeyGenerator{now: now}
}

// Next returns a new storage key for fileName.
func (g *KeyGenerator) Next(fileName string) string {
	return fmt.Sprintf("%d-%s", g.stamp(), SanitizeFileName(fileName))
}

func (g *KeyGenerator) stamp() int64 {
	now := g.now().UnixMilli()
	for {
		last := g.last.Load()
		next := max(now, last+1)
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
