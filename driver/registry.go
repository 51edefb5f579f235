package driver

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"
)

// OpenFunc opens a new driver context.
type OpenFunc func(cfg Config) (Context, error)

// Info describes a registered driver. Lower priorities are tried first.
type Info struct {
	Name     string
	Priority int
	Open     OpenFunc
}

// Registry holds the drivers known to a process.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Info
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Info)}
}

// Register adds info to r. It panics if the name is empty, Open is nil or the
// name is already taken, matching the behavior of database/sql.Register.
func (r *Registry) Register(info Info) {
	if info.Name == "" {
		panic("driver: Register with empty name")
	}
	if info.Open == nil {
		panic("driver: Register " + info.Name + " with nil Open")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.drivers[info.Name]; dup {
		panic("driver: Register called twice for driver " + info.Name)
	}
	r.drivers[info.Name] = info
}

func (r *Registry) Lookup(name string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.drivers[name]
	return info, ok
}

// Drivers returns every registered driver sorted by priority, then name.
func (r *Registry) Drivers() []Info {
	r.mu.RLock()
	infos := make([]Info, 0, len(r.drivers))
	for _, info := range r.drivers {
		infos = append(infos, info)
	}
	r.mu.RUnlock()
	SortByPriority(infos)
	return infos
}

// Default is the registry driver packages add themselves to.
var Default = NewRegistry()

// Register adds info to the Default registry.
func Register(info Info) { Default.Register(info) }

// SortByPriority orders infos by ascending priority, breaking ties by name.
func SortByPriority(infos []Info) {
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].Priority != infos[j].Priority {
			return infos[i].Priority < infos[j].Priority
		}
		return infos[i].Name < infos[j].Name
	})
}

// Selection constrains driver selection.
type Selection struct {
	// Order lists driver names to try before the rest, in that order.
	Order []string
	// Disabled names drivers that must not be opened.
	Disabled []string
}

// Select opens the first candidate that succeeds. Candidates are tried by
// priority unless sel.Order names them first. Disabled candidates are
// recorded as failed attempts without being opened. When nothing opens the
// error is a *NoDriverError listing every candidate.
func Select(candidates []Info, sel Selection, cfg Config) (Context, Info, error) {
	ordered := orderCandidates(candidates, sel.Order)

	disabled := make(map[string]bool, len(sel.Disabled))
	for _, name := range sel.Disabled {
		disabled[name] = true
	}

	var (
		attempts []Attempt
		combined error
	)
	for _, info := range ordered {
		var err error
		if disabled[info.Name] {
			err = ErrDisabled
		} else {
			ctx, openErr := open(info, cfg)
			if openErr == nil {
				return ctx, info, nil
			}
			err = openErr
		}
		attempts = append(attempts, Attempt{Driver: info.Name, Err: err})
		combined = multierr.Append(combined, fmt.Errorf("%s: %w", info.Name, err))
	}
	return nil, Info{}, &NoDriverError{Attempts: attempts, err: combined}
}

func open(info Info, cfg Config) (ctx Context, err error) {
	ctx, err = info.Open(cfg)
	if err == nil && ctx == nil {
		err = fmt.Errorf("driver returned no context")
	}
	return ctx, err
}

func orderCandidates(candidates []Info, order []string) []Info {
	rest := make([]Info, len(candidates))
	copy(rest, candidates)
	SortByPriority(rest)
	if len(order) == 0 {
		return rest
	}

	byName := make(map[string]Info, len(rest))
	for _, info := range rest {
		byName[info.Name] = info
	}
	ordered := make([]Info, 0, len(rest))
	taken := make(map[string]bool, len(order))
	for _, name := range order {
		info, ok := byName[name]
		if !ok || taken[name] {
			continue
		}
		taken[name] = true
		ordered = append(ordered, info)
	}
	for _, info := range rest {
		if !taken[info.Name] {
			ordered = append(ordered, info)
		}
	}
	return ordered
}
