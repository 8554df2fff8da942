package idgen

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Kind names an identifier class with its own reserved range.
type Kind string

// Identifier kinds with stock range allocations.
const (
	KindPerson     Kind = "person"
	KindStudent    Kind = "student"
	KindCourse     Kind = "course"
	KindEnrollment Kind = "enrollment"
	KindTrainer    Kind = "trainer"
)

// DefaultWarnThreshold is the usage ratio at which capacity warnings fire.
const DefaultWarnThreshold = 0.9

// Range is an inclusive block of identifiers reserved for one kind.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Capacity returns how many identifiers the range holds.
func (r Range) Capacity() int64 {
	return r.End - r.Start + 1
}

// Contains reports whether id falls inside the range.
func (r Range) Contains(id int64) bool {
	return id >= r.Start && id <= r.End
}

// DefaultRanges returns the stock allocation: persons 100-999, students
// 1000-1999, courses 2000-2999, enrollments 3000-3999, trainers 4000-4999.
func DefaultRanges() map[Kind]Range {
	return map[Kind]Range{
		KindPerson:     {Start: 100, End: 999},
		KindStudent:    {Start: 1000, End: 1999},
		KindCourse:     {Start: 2000, End: 2999},
		KindEnrollment: {Start: 3000, End: 3999},
		KindTrainer:    {Start: 4000, End: 4999},
	}
}

// Config configures an Allocator.
type Config struct {
	Ranges        map[Kind]Range
	WarnThreshold float64
	Logger        *zap.Logger
	// OnCapacityWarning receives every capacity warning in addition to the
	// log line. Called outside the allocator's locks.
	OnCapacityWarning func(kind Kind, usage float64, remaining int64)
}

type kindState struct {
	mu      sync.Mutex
	rng     Range
	counter int64
	issued  int64
}

// Allocator issues monotonically increasing identifiers from disjoint
// per-kind ranges. Exhausting a range is a terminal condition, not a
// transient fault. All methods are safe for concurrent use.
type Allocator struct {
	states        map[Kind]*kindState
	order         []Kind
	warnThreshold float64
	logger        *zap.Logger
	onWarning     func(Kind, float64, int64)
}

// New builds an Allocator. Ranges default to DefaultRanges and the warning
// threshold to DefaultWarnThreshold. Every range must have a positive start
// no greater than its end, and ranges must not overlap across kinds.
func New(cfg Config) (*Allocator, error) {
	if len(cfg.Ranges) == 0 {
		cfg.Ranges = DefaultRanges()
	}
	if cfg.WarnThreshold == 0 {
		cfg.WarnThreshold = DefaultWarnThreshold
	}
	if cfg.WarnThreshold < 0 || cfg.WarnThreshold > 1 {
		return nil, apperrors.Validationf("warn threshold %g outside (0, 1]", cfg.WarnThreshold)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	order := make([]Kind, 0, len(cfg.Ranges))
	for kind := range cfg.Ranges {
		order = append(order, kind)
	}
	sort.Slice(order, func(i, j int) bool {
		return cfg.Ranges[order[i]].Start < cfg.Ranges[order[j]].Start
	})

	states := make(map[Kind]*kindState, len(cfg.Ranges))
	for i, kind := range order {
		rng := cfg.Ranges[kind]
		if rng.Start <= 0 {
			return nil, apperrors.Validationf("%s range start %d must be positive", kind, rng.Start)
		}
		if rng.Start > rng.End {
			return nil, apperrors.Validationf("%s range [%d, %d] has start after end", kind, rng.Start, rng.End)
		}
		if i > 0 {
			prev := order[i-1]
			if rng.Start <= cfg.Ranges[prev].End {
				return nil, apperrors.Validationf("%s range [%d, %d] overlaps %s range [%d, %d]",
					kind, rng.Start, rng.End, prev, cfg.Ranges[prev].Start, cfg.Ranges[prev].End)
			}
		}
		states[kind] = &kindState{rng: rng, counter: rng.Start}
	}

	return &Allocator{
		states:        states,
		order:         order,
		warnThreshold: cfg.WarnThreshold,
		logger:        cfg.Logger,
		onWarning:     cfg.OnCapacityWarning,
	}, nil
}

func (a *Allocator) state(kind Kind) (*kindState, error) {
	st, ok := a.states[kind]
	if !ok {
		return nil, apperrors.Validationf("unknown id kind %q", kind)
	}
	return st, nil
}

// Next issues the smallest unused id for kind. Once the range is exhausted
// every call fails with a RANGE_EXHAUSTED error and the counter stays put.
func (a *Allocator) Next(kind Kind) (int64, error) {
	st, err := a.state(kind)
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	if st.counter > st.rng.End {
		st.mu.Unlock()
		return 0, apperrors.RangeExhausted(string(kind), st.rng.Start, st.rng.End)
	}
	id := st.counter
	st.counter++
	st.issued++
	usage := float64(st.issued) / float64(st.rng.Capacity())
	remaining := st.rng.End - st.counter + 1
	st.mu.Unlock()

	if usage >= a.warnThreshold {
		a.warn(kind, usage, remaining)
	}
	return id, nil
}

// Validate checks that id falls inside kind's configured range. It never
// consumes capacity.
func (a *Allocator) Validate(kind Kind, id int64) error {
	st, err := a.state(kind)
	if err != nil {
		return err
	}
	if !st.rng.Contains(id) {
		return apperrors.InvalidRange(string(kind), id, st.rng.Start, st.rng.End)
	}
	return nil
}

// RegisterExternal records an externally minted id so future Next calls
// never collide with it. The counter only moves forward: registering an id
// below the counter counts against capacity without rewinding anything.
// Duplicate detection stays with the caller.
func (a *Allocator) RegisterExternal(kind Kind, id int64) error {
	st, err := a.state(kind)
	if err != nil {
		return err
	}
	if !st.rng.Contains(id) {
		return apperrors.InvalidRange(string(kind), id, st.rng.Start, st.rng.End)
	}

	st.mu.Lock()
	if st.issued >= st.rng.Capacity() {
		st.mu.Unlock()
		return apperrors.CapacityReached(string(kind), st.rng.Capacity())
	}
	st.issued++
	atLimit := false
	if id >= st.counter {
		st.counter = id + 1
		atLimit = st.counter > st.rng.End
	}
	st.mu.Unlock()

	if atLimit {
		a.logger.Warn("id counter reached range limit",
			zap.String("kind", string(kind)),
			zap.Int64("range_end", st.rng.End))
	}
	return nil
}

// Remaining reports how many ids are still issuable for kind, based on the
// counter position. Returns zero for unknown kinds.
func (a *Allocator) Remaining(kind Kind) int64 {
	st, ok := a.states[kind]
	if !ok {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.rng.End - st.counter + 1
}

// UsagePercent reports issued ids as a fraction of capacity, 0.0 to 1.0.
// Returns zero for unknown kinds.
func (a *Allocator) UsagePercent(kind Kind) float64 {
	st, ok := a.states[kind]
	if !ok {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return float64(st.issued) / float64(st.rng.Capacity())
}

// Capacity reports the total id capacity for kind. Returns zero for unknown
// kinds.
func (a *Allocator) Capacity(kind Kind) int64 {
	st, ok := a.states[kind]
	if !ok {
		return 0
	}
	return st.rng.Capacity()
}

// Threshold returns the configured warning threshold.
func (a *Allocator) Threshold() float64 {
	return a.warnThreshold
}

// KindUsage is a point-in-time capacity reading for one kind.
type KindUsage struct {
	Kind         Kind    `json:"kind"`
	Range        Range   `json:"range"`
	Issued       int64   `json:"issued"`
	Remaining    int64   `json:"remaining"`
	UsagePercent float64 `json:"usage_percent"`
	// NextID is the id the next allocation would return, -1 once the range
	// is exhausted.
	NextID int64 `json:"next_id"`
}

// Snapshot returns a capacity reading per kind, ordered by range start.
// Each reading is consistent for its kind; the set is not a global
// transaction across kinds.
func (a *Allocator) Snapshot() []KindUsage {
	out := make([]KindUsage, 0, len(a.order))
	for _, kind := range a.order {
		st := a.states[kind]
		st.mu.Lock()
		next := st.counter
		if next > st.rng.End {
			next = -1
		}
		out = append(out, KindUsage{
			Kind:         kind,
			Range:        st.rng,
			Issued:       st.issued,
			Remaining:    st.rng.End - st.counter + 1,
			UsagePercent: float64(st.issued) / float64(st.rng.Capacity()),
			NextID:       next,
		})
		st.mu.Unlock()
	}
	return out
}

// ApproachingCapacity reports whether any kind's usage is at or past the
// warning threshold.
func (a *Allocator) ApproachingCapacity() bool {
	for _, kind := range a.order {
		st := a.states[kind]
		st.mu.Lock()
		usage := float64(st.issued) / float64(st.rng.Capacity())
		st.mu.Unlock()
		if usage >= a.warnThreshold {
			return true
		}
	}
	return false
}

// Kinds lists configured kinds ordered by range start.
func (a *Allocator) Kinds() []Kind {
	out := make([]Kind, len(a.order))
	copy(out, a.order)
	return out
}

// Reset returns every kind to its range start with zero issued ids.
// For tests only; production paths never rewind the allocator.
func (a *Allocator) Reset() {
	for _, kind := range a.order {
		st := a.states[kind]
		st.mu.Lock()
		st.counter = st.rng.Start
		st.issued = 0
		st.mu.Unlock()
	}
	a.logger.Warn("id allocator counters reset")
}

func (a *Allocator) warn(kind Kind, usage float64, remaining int64) {
	a.logger.Warn("id capacity warning",
		zap.String("kind", string(kind)),
		zap.Float64("usage", usage),
		zap.Int64("remaining", remaining))
	if a.onWarning != nil {
		a.onWarning(kind, usage, remaining)
	}
}
