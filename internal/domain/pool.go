package domain

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// TotalNumbers is the size of the tombola number universe (1..90).
const TotalNumbers = 90

// snapshotRecentWindow is how many trailing draws a Snapshot carries.
const snapshotRecentWindow = 5

var (
	// ErrPoolExhausted is returned when drawing from an empty pool.
	// Expected near end-of-game, not a bug.
	ErrPoolExhausted = errors.New("number pool exhausted")
	// ErrInvalidWindow is returned for a non-positive RecentDrawn window.
	ErrInvalidWindow = errors.New("recent window must be positive")
)

// NumberPool owns the universe of drawable numbers. It is the sole source of
// which number came out and when. All mutation happens through Draw and Reset.
type NumberPool struct {
	available []int
	drawn     map[int]bool
	history   []int

	rng      *rand.Rand
	scripted bool
	script   []int // fixed draw order for replay
}

// NewNumberPool constructs a full pool with the provided rng or a time-seeded
// default.
func NewNumberPool(rng *rand.Rand) *NumberPool {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p := &NumberPool{rng: rng}
	p.Reset()
	return p
}

// NewScriptedNumberPool constructs a pool that draws in the given order.
// Used for replaying a recorded draw history deterministically. An empty
// order is a valid zero-draw history; drawing past the script stays
// deterministic.
func NewScriptedNumberPool(order []int) *NumberPool {
	p := &NumberPool{scripted: true, script: append([]int(nil), order...)}
	p.Reset()
	return p
}

// Draw removes a uniformly random available number, records it in the draw
// history and returns it. Fails with ErrPoolExhausted when nothing is left;
// no state changes on failure.
func (p *NumberPool) Draw() (int, error) {
	if len(p.available) == 0 {
		return 0, ErrPoolExhausted
	}

	idx := p.nextIndex()
	n := p.available[idx]
	p.available[idx] = p.available[len(p.available)-1]
	p.available = p.available[:len(p.available)-1]
	p.drawn[n] = true
	p.history = append(p.history, n)
	return n, nil
}

func (p *NumberPool) nextIndex() int {
	if p.scripted {
		if len(p.history) < len(p.script) {
			want := p.script[len(p.history)]
			for i, n := range p.available {
				if n == want {
					return i
				}
			}
		}
		// Script exhausted (or named an already-drawn number): continue
		// with whatever is left, deterministically.
		return 0
	}
	return p.rng.Intn(len(p.available))
}

// IsDrawn reports whether n has been drawn. Out-of-range values simply return
// false; the permissiveness is intentional.
func (p *NumberPool) IsDrawn(n int) bool {
	return p.drawn[n]
}

// CountDrawn returns how many numbers have been drawn so far.
func (p *NumberPool) CountDrawn() int {
	return len(p.history)
}

// CountAvailable returns how many numbers remain drawable.
func (p *NumberPool) CountAvailable() int {
	return len(p.available)
}

// LastDrawn returns the most recent draw, or false before the first draw.
func (p *NumberPool) LastDrawn() (int, bool) {
	if len(p.history) == 0 {
		return 0, false
	}
	return p.history[len(p.history)-1], true
}

// RecentDrawn returns the last n draws oldest-to-newest. If fewer than n
// numbers were drawn the whole history is returned.
func (p *NumberPool) RecentDrawn(n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrInvalidWindow
	}
	start := len(p.history) - n
	if start < 0 {
		start = 0
	}
	return append([]int(nil), p.history[start:]...), nil
}

// History returns the full draw history in temporal order. Serializing it is
// sufficient to replay the pool deterministically.
func (p *NumberPool) History() []int {
	return append([]int(nil), p.history...)
}

// PoolSnapshot is the read-only status view consumed by the boundary layer.
type PoolSnapshot struct {
	TotalNumbers    int     `json:"total_numbers"`
	DrawnCount      int     `json:"drawn_count"`
	AvailableCount  int     `json:"available_count"`
	RecentDrawn     []int   `json:"recent_drawn"`
	LastDrawn       int     `json:"last_drawn"` // 0 before the first draw
	ProgressPercent float64 `json:"progress_percent"`
}

// Snapshot returns the current pool status. ProgressPercent is rounded to one
// decimal place.
func (p *NumberPool) Snapshot() PoolSnapshot {
	recent, _ := p.RecentDrawn(snapshotRecentWindow)
	last, _ := p.LastDrawn()
	progress := float64(len(p.history)) / float64(TotalNumbers) * 100
	return PoolSnapshot{
		TotalNumbers:    TotalNumbers,
		DrawnCount:      len(p.history),
		AvailableCount:  len(p.available),
		RecentDrawn:     recent,
		LastDrawn:       last,
		ProgressPercent: math.Round(progress*10) / 10,
	}
}

// Reset restores the initial full state: 90 available, nothing drawn.
func (p *NumberPool) Reset() {
	p.available = make([]int, 0, TotalNumbers)
	for n := 1; n <= TotalNumbers; n++ {
		p.available = append(p.available, n)
	}
	p.drawn = make(map[int]bool, TotalNumbers)
	p.history = p.history[:0]
}
