package trivia

import (
	"math/rand"
	"sync"
	"time"
)

// Picker draws a uniformly random question from an eligible pool. The rng is
// guarded because handlers invoke the picker concurrently.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker seeds a picker. A zero seed falls back to the wall clock.
func NewPicker(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Next returns one question chosen uniformly at random from pool. An empty
// pool reports ok=false, which signals quiz completion rather than an error.
func (p *Picker) Next(pool []Question) (Question, bool) {
	if len(pool) == 0 {
		return Question{}, false
	}
	p.mu.Lock()
	idx := p.rng.Intn(len(pool))
	p.mu.Unlock()
	return pool[idx], true
}

// Eligible filters questions down to those whose id is not excluded. The
// exclusion set is caller-supplied per request; the server never accumulates
// it across calls.
func Eligible(questions []Question, excludeIDs []int) []Question {
	if len(excludeIDs) == 0 {
		return questions
	}
	excluded := make(map[int]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	pool := make([]Question, 0, len(questions))
	for _, q := range questions {
		if _, seen := excluded[q.ID]; !seen {
			pool = append(pool, q)
		}
	}
	return pool
}
