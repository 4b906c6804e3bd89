package structure

import (
	"github.com/xtalgeom/nciscan/pkg/errors"
	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// Fragment is one maximal connected component of the covalent bond graph,
// i.e. an independent molecular unit within a multi-molecule structure.
// ID is 0-based; reports display ID+1.
type Fragment struct {
	ID    int
	Atoms []int
}

// DetectFragments partitions the atoms into connected components of the bond
// graph.  Components are discovered by scanning atom indices in ascending
// order; within a component traversal is an iterative stack-based DFS, so no
// recursion depth limits apply.  The partition is exhaustive and disjoint:
// every atom lands in exactly one fragment.
//
// DetectBonds must have run first.
func (s *Structure) DetectFragments() error {
	if s.bonds == nil {
		return errors.New(errors.ErrCodeFragmentsNotComputed, "fragment detection requires a bond graph").
			WithDetail("call DetectBonds first")
	}

	n := len(s.atoms)
	visited := make([]bool, n)
	var fragments []Fragment

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		stack := []int{start}
		var members []int
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[current] {
				continue
			}
			visited[current] = true
			members = append(members, current)

			for _, neighbor := range s.bonds.Neighbors(current) {
				if !visited[neighbor] {
					stack = append(stack, neighbor)
				}
			}
		}

		fragments = append(fragments, Fragment{ID: len(fragments), Atoms: members})
	}

	s.fragments = fragments
	return nil
}

// FragmentOf returns the 0-based fragment ID containing atom index i, or -1
// when fragments have not been computed or i is out of range.
func (s *Structure) FragmentOf(i int) int {
	if s.fragments == nil || i < 0 || i >= len(s.atoms) {
		return -1
	}
	for _, frag := range s.fragments {
		for _, member := range frag.Atoms {
			if member == i {
				return frag.ID
			}
		}
	}
	return -1
}

// FragmentNumber returns the 1-based display number of the fragment
// containing atom i, or 0 when unknown.
func (s *Structure) FragmentNumber(i int) int {
	return s.FragmentOf(i) + 1
}

// Scope classifies an atom pair as intra- or inter-fragment, or unknown when
// fragments have not been computed.
func (s *Structure) Scope(i, j int) chem.Scope {
	fi := s.FragmentOf(i)
	fj := s.FragmentOf(j)
	if fi < 0 || fj < 0 {
		return chem.ScopeUnknown
	}
	if fi == fj {
		return chem.ScopeIntra
	}
	return chem.ScopeInter
}
