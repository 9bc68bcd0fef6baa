package service

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identifier prefixes per entity.
const (
	PrefixClass           = "cls_"
	PrefixStudent         = "std_"
	PrefixImportedStudent = "std_imp_"
	PrefixTask            = "tsk_"
	PrefixNotification    = "ntf_"
)

// IDGenerator issues time-ordered identifiers. Tokens are unix milliseconds,
// bumped forward whenever two calls land in the same millisecond, so an id
// is never handed out twice by one process.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator builds a generator reading time from now (time.Now when nil).
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// New returns prefix + token + short random suffix.
func (g *IDGenerator) New(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + strconv.FormatInt(g.token(), 10) + "_" + suffix
}

// Batch returns n ids sharing one token, suffixed with their index.
func (g *IDGenerator) Batch(prefix string, n int) []string {
	if n <= 0 {
		return nil
	}
	base := prefix + strconv.FormatInt(g.token(), 10) + "_"
	ids := make([]string, n)
	for i := range ids {
		ids[i] = base + strconv.Itoa(i)
	}
	return ids
}

func (g *IDGenerator) token() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}
