// Package chem defines the shared vocabulary types and data transfer objects
// exchanged between the nciscan layers (domain, application, CLI, HTTP).
// No behavior lives here beyond validation and formatting helpers.
package chem

import (
	"fmt"
	"strings"
)

// InteractionType classifies a detected non-covalent interaction.
// The string values are part of the report format and match the reference
// vocabulary, including the mixed-case "H-bond".
type InteractionType string

const (
	HBond         InteractionType = "H-bond"
	HalogenBond   InteractionType = "halogen_bond"
	ChalcogenBond InteractionType = "chalcogen_bond"
	StericClash   InteractionType = "steric_clash"
)

// String returns the wire/report form of the interaction type.
func (t InteractionType) String() string { return string(t) }

// IsValid reports whether t is one of the known interaction types.
func (t InteractionType) IsValid() bool {
	switch t {
	case HBond, HalogenBond, ChalcogenBond, StericClash:
		return true
	}
	return false
}

// Directional reports whether the interaction carries donor/acceptor
// semantics.  Steric clashes are symmetric contacts and are suppressed when
// a directional record already covers the same atom pair.
func (t InteractionType) Directional() bool {
	switch t {
	case HBond, HalogenBond, ChalcogenBond:
		return true
	}
	return false
}

// ParseInteractionType converts a string into an InteractionType.
func ParseInteractionType(s string) (InteractionType, error) {
	t := InteractionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown interaction type %q", s)
	}
	return t, nil
}

// Scope states whether both atoms of an interaction belong to the same
// covalent fragment.
type Scope string

const (
	ScopeIntra   Scope = "intra"
	ScopeInter   Scope = "inter"
	ScopeUnknown Scope = "unknown"
)

// String returns the report form of the scope.
func (s Scope) String() string { return string(s) }

// IsValid reports whether s is a known scope value.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeIntra, ScopeInter, ScopeUnknown:
		return true
	}
	return false
}

// RadiiSource selects the covalent-radius parameter set.
type RadiiSource string

const (
	SourceCordero RadiiSource = "cordero"
	SourcePyykko  RadiiSource = "pyykko"
)

// IsValid reports whether src names a known parameter set.
func (src RadiiSource) IsValid() bool {
	return src == SourceCordero || src == SourcePyykko
}

// BondOrder selects the covalent-radius bond order.
type BondOrder string

const (
	OrderSingle BondOrder = "single"
	OrderDouble BondOrder = "double"
	OrderTriple BondOrder = "triple"
)

// IsValid reports whether o is a known bond order.
func (o BondOrder) IsValid() bool {
	return o == OrderSingle || o == OrderDouble || o == OrderTriple
}

// NormalizeSymbol canonicalizes an element symbol to table form: first letter
// upper-case, remainder lower-case ("BR" and "br" both become "Br").
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// AtomDTO is the transport form of a single atom.
type AtomDTO struct {
	Symbol string  `json:"symbol"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Charge float64 `json:"charge,omitempty"`
}

// FragmentDTO is the transport form of one covalent fragment.
// Atom indices are zero-based; Number is the 1-based display number.
type FragmentDTO struct {
	Number      int   `json:"number"`
	AtomIndices []int `json:"atom_indices"`
}

// InteractionDTO is the transport form of one detected interaction.
// I and J are the canonical (min, max) zero-based atom indices.
type InteractionDTO struct {
	Type       InteractionType `json:"type"`
	I          int             `json:"i"`
	J          int             `json:"j"`
	Pair       string          `json:"pair"`
	Distance   float64         `json:"distance"`
	Angle      *float64        `json:"angle,omitempty"`
	AngleAtoms []int           `json:"angle_atoms,omitempty"`
	Fragments  string          `json:"fragments"`
	Scope      Scope           `json:"scope"`
}

// AnalysisDTO is the full result of one structure analysis pass.
type AnalysisDTO struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	AtomCount     int              `json:"atom_count"`
	BondCount     int              `json:"bond_count"`
	Fragments     []FragmentDTO    `json:"fragments"`
	Interactions  []InteractionDTO `json:"interactions"`
	ElapsedMillis int64            `json:"elapsed_ms"`
}
