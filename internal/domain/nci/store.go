// Package nci implements non-covalent interaction detection: a store of
// per-pair interaction records, a priority-ordered detector registry, and
// the built-in hydrogen-bond, sigma-hole and steric-clash detectors.
package nci

import (
	"fmt"

	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// Pair identifies an unordered atom pair in canonical form: I < J.
type Pair struct {
	I int
	J int
}

// NewPair returns the canonical Pair for atom indices i and j.
func NewPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{I: i, J: j}
}

// Record is one detected interaction on a pair.  Angle is nil for
// interaction types without an angular criterion (steric clashes).
// AngleAtoms lists the three atoms defining the angle; their order encodes
// donor/acceptor roles and is interpreted by DonorAcceptor.
type Record struct {
	Type       chem.InteractionType
	Distance   float64
	Angle      *float64
	AngleAtoms []int
	Scope      chem.Scope
}

// Entry couples a Record with the pair it was recorded on.
type Entry struct {
	Pair   Pair
	Record Record
}

// Store accumulates interaction records during a detection run.  Pairs are
// kept in insertion order so reports are deterministic; a pair may carry
// several records of different types.
//
// Store is not safe for concurrent use; each detection run owns its own.
type Store struct {
	order  []Pair
	byPair map[Pair][]Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byPair: make(map[Pair][]Record)}
}

// Add records an interaction between atoms i and j.  The pair is
// canonicalized before insertion.
func (s *Store) Add(i, j int, rec Record) error {
	if i == j {
		return errors.New(errors.ErrCodeInteractionInvalid, "interaction requires two distinct atoms").
			WithDetail(fmt.Sprintf("index=%d", i))
	}
	if !rec.Type.IsValid() {
		return errors.New(errors.ErrCodeInteractionInvalid, "unknown interaction type").
			WithDetail(string(rec.Type))
	}

	p := NewPair(i, j)
	if _, seen := s.byPair[p]; !seen {
		s.order = append(s.order, p)
	}
	s.byPair[p] = append(s.byPair[p], rec)
	return nil
}

// Pairs returns all recorded pairs in insertion order.
func (s *Store) Pairs() []Pair {
	out := make([]Pair, len(s.order))
	copy(out, s.order)
	return out
}

// Records returns the records on pair p in insertion order, or nil.
func (s *Store) Records(p Pair) []Record {
	recs := s.byPair[p]
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}

// HasDirectional reports whether the pair (i, j) already carries a
// donor/acceptor interaction.  The steric-clash detector uses this to stay
// silent on contacts that a directional detector has already explained.
func (s *Store) HasDirectional(i, j int) bool {
	for _, rec := range s.byPair[NewPair(i, j)] {
		if rec.Type.Directional() {
			return true
		}
	}
	return false
}

// Len returns the total number of records across all pairs.
func (s *Store) Len() int {
	n := 0
	for _, recs := range s.byPair {
		n += len(recs)
	}
	return n
}

// All returns every entry, pairs in insertion order and records in
// insertion order within each pair.
func (s *Store) All() []Entry {
	var out []Entry
	for _, p := range s.order {
		for _, rec := range s.byPair[p] {
			out = append(out, Entry{Pair: p, Record: rec})
		}
	}
	return out
}

// Filter selects a subset of entries.  Zero-valued fields match everything.
type Filter struct {
	Types []chem.InteractionType
	Scope chem.Scope
}

func (f Filter) matches(rec Record) bool {
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if rec.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Scope != "" && rec.Scope != f.Scope {
		return false
	}
	return true
}

// List returns the entries matching f, preserving insertion order.
func (s *Store) List(f Filter) []Entry {
	var out []Entry
	for _, e := range s.All() {
		if f.matches(e.Record) {
			out = append(out, e)
		}
	}
	return out
}
