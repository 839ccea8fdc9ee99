package minefield

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestNewIsEmpty(t *testing.T) {
	tests := []struct{ width, height int }{
		{1, 1}, {2, 1}, {1, 7}, {9, 9}, {30, 16},
	}
	for _, test := range tests {
		f := New(test.width, test.height)
		require.Equal(t, test.width, f.Width())
		require.Equal(t, test.height, f.Height())
		require.Equal(t, test.width*test.height, f.Len())
		for y := range test.height {
			for x := range test.width {
				require.Equal(t, Empty, f.Cell(Position{x, y}))
			}
		}
		require.Zero(t, f.Mines())
	}
}

func TestNewRejectsDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          error
	}{
		{"zero width", 0, 5, ErrInvalidDimensions},
		{"negative height", 5, -1, ErrInvalidDimensions},
		{"overflow", math.MaxInt/2 + 1, 2, ErrDimensionOverflow},
		{"square overflow", math.MaxInt, math.MaxInt, ErrDimensionOverflow},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := recoverError(func() { New(test.width, test.height) })
			require.ErrorIs(t, err, test.want)
			require.ErrorIs(t, CheckDimensions(test.width, test.height), test.want)
		})
	}
	require.NoError(t, CheckDimensions(math.MaxInt, 1))
}

func TestCellAccess(t *testing.T) {
	f := New(3, 2)
	f.SetCell(Position{2, 1}, Mined)
	assert.Equal(t, Mined, f.Cell(Position{2, 1}))
	assert.Equal(t, Empty, f.Cell(Position{1, 1}))
	assert.Equal(t, 1, f.Mines())

	err := recoverError(func() { f.Cell(Position{3, 0}) })
	assert.ErrorIs(t, err, ErrOutOfBounds)
	err = recoverError(func() { f.SetCell(Position{0, -1}, Mined) })
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNeighbours(t *testing.T) {
	f := New(5, 4)
	for y := range f.Height() {
		for x := range f.Width() {
			pos := Position{x, y}
			onEdgeX := x == 0 || x == f.Width()-1
			onEdgeY := y == 0 || y == f.Height()-1

			want := 8
			switch {
			case onEdgeX && onEdgeY:
				want = 3
			case onEdgeX || onEdgeY:
				want = 5
			}

			ns := f.Neighbours(pos)
			require.Len(t, ns, want, "neighbours of %s", pos)
			seen := make(map[Position]bool)
			for _, n := range ns {
				require.True(t, f.InBounds(n))
				require.NotEqual(t, pos, n)
				require.LessOrEqual(t, abs(n.X-x), 1)
				require.LessOrEqual(t, abs(n.Y-y), 1)
				require.False(t, seen[n], "duplicate neighbour %s", n)
				seen[n] = true
			}
		}
	}
}

func TestNeighboursDegenerate(t *testing.T) {
	assert.Empty(t, New(1, 1).Neighbours(Position{0, 0}))
	assert.Equal(t, []Position{{1, 0}}, New(2, 1).Neighbours(Position{0, 0}))
	assert.Equal(t,
		[]Position{{0, 0}, {0, 2}},
		New(1, 3).Neighbours(Position{0, 1}),
	)
}

func TestNeighboursOrder(t *testing.T) {
	got := New(3, 3).Neighbours(Position{1, 1})
	want := []Position{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	assert.Equal(t, want, got)
}

func TestNumber(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, mines := range []int{0, 5, 20, 39, 40} {
		f := New(8, 5)
		f.Mine(r, mines)
		for y := range f.Height() {
			for x := range f.Width() {
				pos := Position{x, y}
				n, ok := f.Number(pos)
				if f.Cell(pos) == Mined {
					require.False(t, ok)
					continue
				}
				require.True(t, ok)

				want := 0
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						p := Position{x + dx, y + dy}
						if p != pos && f.InBounds(p) && f.Cell(p) == Mined {
							want++
						}
					}
				}
				require.Equal(t, want, n, "number at %s", pos)
				require.GreaterOrEqual(t, n, 0)
				require.LessOrEqual(t, n, 8)
			}
		}
	}
}

func TestNumberSurrounded(t *testing.T) {
	f := New(3, 3)
	for _, p := range f.Neighbours(Position{1, 1}) {
		f.SetCell(p, Mined)
	}
	n, ok := f.Number(Position{1, 1})
	require.True(t, ok)
	require.Equal(t, 8, n)
}

func TestString(t *testing.T) {
	f := New(2, 2)
	f.SetCell(Position{1, 0}, Mined)
	assert.Equal(t, "- * \n- - \n", f.String())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
