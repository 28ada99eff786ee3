// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// Prober reads just enough of a stream to describe its format.
type Prober interface {
	Probe(rs io.ReadSeeker) (Format, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(rs io.ReadSeeker) (Format, error)

func (fn ProberFunc) Probe(rs io.ReadSeeker) (Format, error) { return fn(rs) }

// Registry for probers by format key (e.g., "wav", "aiff", "mp3").
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[format] = p
}

func (r *Registry) Get(format string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[format]
	return p, ok
}

// Names returns the registered format keys, sorted.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.probers))
	for name := range r.probers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Probe runs the prober registered for format against rs.
func (r *Registry) Probe(format string, rs io.ReadSeeker) (Format, error) {
	p, ok := r.Get(format)
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrNoProber, format)
	}
	return p.Probe(rs)
}
