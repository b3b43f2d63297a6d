package library

import (
	"errors"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrUnknownEntry is returned by callers that resolve an ID the registry does not hold.
var ErrUnknownEntry = errors.New("unknown library entry")

// Registry indexes library entries by kind and ID.
//
// A Registry is not safe for concurrent Register calls; once populated it may be
// read from any number of goroutines.
type Registry struct {
	byKind map[Kind]map[string]Entry
	order  []Entry
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{byKind: make(map[Kind]map[string]Entry, len(Kinds))}
}

// NewRegistryFrom returns a Registry holding entries.
//
// Precondition: every entry satisfies Register's preconditions.
func NewRegistryFrom(entries []Entry) *Registry {
	r := NewRegistry()
	for _, e := range entries {
		r.Register(e)
	}
	return r
}

// Register adds e to the registry.
//
// Precondition: e must be non-nil with a non-empty ID.
// Postcondition: e is retrievable by its kind and ID; if called multiple times
// with the same kind and ID, the last call wins.
func (r *Registry) Register(e Entry) {
	if e == nil {
		panic("Registry.Register: precondition violated: entry must be non-nil")
	}
	id := e.Meta().ID
	if id == "" {
		panic("Registry.Register: precondition violated: entry ID must be non-empty")
	}
	m, ok := r.byKind[e.Kind()]
	if !ok {
		m = make(map[string]Entry)
		r.byKind[e.Kind()] = m
	}
	if old, ok := m[id]; ok {
		for i, o := range r.order {
			if o == old {
				r.order[i] = e
				break
			}
		}
	} else {
		r.order = append(r.order, e)
	}
	m[id] = e
}

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.order) }

// Get returns the entry of kind with id.
func (r *Registry) Get(kind Kind, id string) (Entry, bool) {
	e, ok := r.byKind[kind][id]
	return e, ok
}

// Creature returns the creature with id.
func (r *Registry) Creature(id string) (*Creature, bool) {
	e, ok := r.Get(KindCreature, id)
	if !ok {
		return nil, false
	}
	return e.(*Creature), true
}

// Hazard returns the hazard with id.
func (r *Registry) Hazard(id string) (*Hazard, bool) {
	e, ok := r.Get(KindHazard, id)
	if !ok {
		return nil, false
	}
	return e.(*Hazard), true
}

// Item returns the item with id.
func (r *Registry) Item(id string) (*Item, bool) {
	e, ok := r.Get(KindItem, id)
	if !ok {
		return nil, false
	}
	return e.(*Item), true
}

// All returns the entries of kind sorted by name, then ID.
func (r *Registry) All(kind Kind) []Entry {
	out := make([]Entry, 0, len(r.byKind[kind]))
	for _, e := range r.byKind[kind] {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Meta(), out[j].Meta()
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return out
}

// searchSource adapts a slice of entries to fuzzy.Source.
type searchSource []Entry

func (s searchSource) String(i int) string { return strings.ToLower(s[i].Meta().Name) }
func (s searchSource) Len() int            { return len(s) }

// Search returns entries whose names fuzzy-match query, best match first.
// With no kinds every kind is searched. An empty query matches nothing.
func (r *Registry) Search(query string, kinds ...Kind) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var src searchSource
	for _, e := range r.order {
		if len(want) == 0 || want[e.Kind()] {
			src = append(src, e)
		}
	}
	matches := fuzzy.FindFrom(query, src)
	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = src[m.Index]
	}
	return out
}
