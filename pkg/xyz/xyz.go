// Package xyz parses the plain-text XYZ molecular geometry format: an atom
// count line, a free-form comment line, then one "symbol x y z" record per
// atom.  The parser is deliberately standalone so external tooling can use
// it without pulling in the analysis engine.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xtalgeom/nciscan/pkg/errors"
)

// Atom is one parsed atom record.  The symbol is kept verbatim; consumers
// normalize it when building a structure.
type Atom struct {
	Symbol string
	X      float64
	Y      float64
	Z      float64
}

// Molecule is one parsed XYZ block.
type Molecule struct {
	// Comment is the second line of the block, conventionally a title.
	Comment string
	Atoms   []Atom
}

// Parse reads a single XYZ block from r.  Leading blank lines are ignored;
// the declared atom count must match the number of atom records exactly.
func Parse(r io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return scanner.Text(), true
	}

	// Count line: the first non-blank line.
	var countLine string
	for {
		line, ok := next()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeXYZMalformed, "read failed")
			}
			return nil, errors.New(errors.ErrCodeXYZMalformed, "empty input: expected atom count line")
		}
		if strings.TrimSpace(line) != "" {
			countLine = strings.TrimSpace(line)
			break
		}
	}

	count, err := strconv.Atoi(countLine)
	if err != nil {
		return nil, errors.New(errors.ErrCodeXYZAtomCount, "atom count line is not an integer").
			WithDetail(fmt.Sprintf("line %d: %q", lineNo, countLine))
	}
	if count <= 0 {
		return nil, errors.New(errors.ErrCodeXYZAtomCount, "atom count must be positive").
			WithDetail(fmt.Sprintf("line %d: %d", lineNo, count))
	}

	comment, ok := next()
	if !ok {
		return nil, errors.New(errors.ErrCodeXYZMalformed, "missing comment line")
	}

	atoms := make([]Atom, 0, count)
	for len(atoms) < count {
		line, ok := next()
		if !ok {
			return nil, errors.New(errors.ErrCodeXYZAtomCount, "fewer atom records than declared").
				WithDetail(fmt.Sprintf("declared %d, found %d", count, len(atoms)))
		}
		if strings.TrimSpace(line) == "" {
			return nil, errors.New(errors.ErrCodeXYZMalformed, "blank line inside atom records").
				WithDetail(fmt.Sprintf("line %d", lineNo))
		}

		atom, err := parseAtomLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeXYZMalformed, "read failed")
	}

	return &Molecule{Comment: strings.TrimSpace(comment), Atoms: atoms}, nil
}

// parseAtomLine splits one "symbol x y z" record.  Trailing extra columns
// (charges, gradients) are tolerated and ignored.
func parseAtomLine(line string, lineNo int) (Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Atom{}, errors.New(errors.ErrCodeXYZMalformed, "atom record needs symbol and three coordinates").
			WithDetail(fmt.Sprintf("line %d: %q", lineNo, line))
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[1+i], 64)
		if err != nil {
			return Atom{}, errors.New(errors.ErrCodeXYZCoordinate, "coordinate is not a number").
				WithDetail(fmt.Sprintf("line %d: %q", lineNo, fields[1+i]))
		}
		coords[i] = v
	}

	return Atom{Symbol: fields[0], X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParseFile reads a single XYZ block from the named file.
func ParseFile(path string) (*Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeXYZMalformed, "cannot open XYZ file").
			WithDetail(path)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString reads a single XYZ block from an in-memory string.
func ParseString(s string) (*Molecule, error) {
	return Parse(strings.NewReader(s))
}
