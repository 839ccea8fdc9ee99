package minefield

import (
	"fmt"
	"math"
	"strings"
)

type Cell int8

const (
	Empty Cell = iota
	Mined
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "-"
	case Mined:
		return "*"
	default:
		return "!"
	}
}

type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Minefield is a row-major grid of cells. It is mutated only while mining.
type Minefield struct {
	width int
	data  []Cell
}

// CheckDimensions reports whether a width x height field can be indexed.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width > math.MaxInt/height {
		return ErrDimensionOverflow
	}
	return nil
}

// panics [AssertionError]
func New(width, height int) *Minefield {
	if err := CheckDimensions(width, height); err != nil {
		panic(AssertionError{err, fmt.Sprintf("%dx%d", width, height)})
	}
	return &Minefield{
		width: width,
		data:  make([]Cell, width*height),
	}
}

func (f *Minefield) Width() int {
	return f.width
}

func (f *Minefield) Height() int {
	return len(f.data) / f.width
}

// Len returns the number of cells.
func (f *Minefield) Len() int {
	return len(f.data)
}

func (f *Minefield) InBounds(pos Position) bool {
	return 0 <= pos.X && pos.X < f.width &&
		0 <= pos.Y && pos.Y < f.Height()
}

func (f *Minefield) index(pos Position) int {
	return pos.Y*f.width + pos.X
}

func (f *Minefield) position(i int) Position {
	return Position{X: i % f.width, Y: i / f.width}
}

// panics [AssertionError]
func (f *Minefield) Cell(pos Position) Cell {
	if !f.InBounds(pos) {
		panic(AssertionError{ErrOutOfBounds, pos.String()})
	}
	return f.data[f.index(pos)]
}

// panics [AssertionError]
func (f *Minefield) SetCell(pos Position, c Cell) {
	if !f.InBounds(pos) {
		panic(AssertionError{ErrOutOfBounds, pos.String()})
	}
	f.data[f.index(pos)] = c
}

func (f *Minefield) Mines() (count int) {
	for _, c := range f.data {
		if c == Mined {
			count++
		}
	}
	return
}

// Neighbours returns the in-bounds Moore neighbourhood of pos, iterating
// dx in the outer loop and dy in the inner one.
func (f *Minefield) Neighbours(pos Position) []Position {
	ret := make([]Position, 0, 8)
	height := f.Height()
	for dx := -1; dx <= 1; dx++ {
		x := pos.X + dx
		if x < 0 || x >= f.width {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			y := pos.Y + dy
			if y < 0 || y >= height {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			ret = append(ret, Position{X: x, Y: y})
		}
	}
	return ret
}

// Number returns the count of mined neighbours of pos. ok is false when pos
// itself is mined.
func (f *Minefield) Number(pos Position) (n int, ok bool) {
	if f.Cell(pos) == Mined {
		return 0, false
	}
	for _, p := range f.Neighbours(pos) {
		if f.data[f.index(p)] == Mined {
			n++
		}
	}
	return n, true
}

func (f *Minefield) String() string {
	var b strings.Builder
	for y := range f.Height() {
		for x := range f.width {
			fmt.Fprint(&b, f.data[y*f.width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
