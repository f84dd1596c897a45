package core

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// NumKinds is the number of piece kinds.
const NumKinds = 7

// AllKinds lists every kind in template order.
var AllKinds = [NumKinds]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the single-letter name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseKind converts a letter to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// TemplateSize is the side of a piece template.
const TemplateSize = 4

// Template is a piece's spawn layout.
type Template [TemplateSize][TemplateSize]Cell

// Cells returns the template offsets holding active cells, row-major.
func (t Template) Cells() []Coord {
	var coords []Coord
	for y := 0; y < TemplateSize; y++ {
		for x := 0; x < TemplateSize; x++ {
			if t[y][x].Active() {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// PieceSet maps every kind to its template.
type PieceSet struct {
	Name      string
	Templates [NumKinds]Template
}

// Template returns the template for k.
func (p *PieceSet) Template(k Kind) Template {
	if int(k) >= NumKinds {
		return Template{}
	}
	return p.Templates[k]
}

// Piece set names.
const (
	SetStandard  = "standard"
	SetReference = "reference"
)

// mustTemplate parses four rows of ASCII cells. Used for package-level sets.
func mustTemplate(rows ...string) Template {
	var t Template
	if len(rows) != TemplateSize {
		panic(fmt.Sprintf("template: want %d rows, got %d", TemplateSize, len(rows)))
	}
	for y, row := range rows {
		if len(row) != TemplateSize {
			panic(fmt.Sprintf("template: row %q is not %d wide", row, TemplateSize))
		}
		for x, r := range row {
			cell, ok := cellFromRune(r)
			if !ok || cell == Locked {
				panic(fmt.Sprintf("template: invalid cell %q", r))
			}
			t[y][x] = cell
		}
	}
	return t
}

// StandardSet builds each kind from exactly four core cells.
var StandardSet = PieceSet{
	Name: SetStandard,
	Templates: [NumKinds]Template{
		KindI: mustTemplate(
			"....",
			"....",
			"CCCC",
			"....",
		),
		KindJ: mustTemplate(
			"....",
			"C...",
			"CCC.",
			"....",
		),
		KindL: mustTemplate(
			"....",
			"..C.",
			"CCC.",
			"....",
		),
		KindO: mustTemplate(
			"....",
			".CC.",
			".CC.",
			"....",
		),
		KindS: mustTemplate(
			"....",
			".CC.",
			"CC..",
			"....",
		),
		KindT: mustTemplate(
			"....",
			".C..",
			"CCC.",
			"....",
		),
		KindZ: mustTemplate(
			"....",
			"CC..",
			".CC.",
			"....",
		),
	},
}

// ReferenceSet is the legacy layout: the four core cells padded with aux
// markers up to the piece's bounding rectangle.
var ReferenceSet = PieceSet{
	Name: SetReference,
	Templates: [NumKinds]Template{
		KindI: mustTemplate(
			"....",
			"....",
			"CCCC",
			"....",
		),
		KindJ: mustTemplate(
			"....",
			"Caa.",
			"CCC.",
			"....",
		),
		KindL: mustTemplate(
			"....",
			"aaC.",
			"CCC.",
			"....",
		),
		KindO: mustTemplate(
			"....",
			".CC.",
			".CC.",
			"....",
		),
		KindS: mustTemplate(
			"....",
			"aCC.",
			"CCa.",
			"....",
		),
		KindT: mustTemplate(
			"....",
			"aCa.",
			"CCC.",
			"....",
		),
		KindZ: mustTemplate(
			"....",
			"CCa.",
			"aCC.",
			"....",
		),
	},
}

// LookupSet returns the named piece set.
func LookupSet(name string) (*PieceSet, error) {
	switch name {
	case "", SetStandard:
		return &StandardSet, nil
	case SetReference:
		return &ReferenceSet, nil
	default:
		return nil, fmt.Errorf("unknown piece set %q", name)
	}
}
