package minefield

import "fmt"

// Rand is the random source used for mining and tie-breaking.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Perm(n int) []int
}

// Sample picks k distinct indices from [0, n) uniformly at random.
//
// panics [AssertionError]
func Sample(r Rand, n, k int) []int {
	if k < 0 {
		panic(AssertionError{ErrNegativeMines, fmt.Sprintf("%d", k)})
	}
	if k > n {
		panic(AssertionError{ErrTooManyMines, fmt.Sprintf("%d mines for %d cells", k, n)})
	}

	/*
	 * Write down the list of candidates, then pick k off it, moving the
	 * last remaining candidate into each picked slot.
	 */
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}
	picked := make([]int, 0, k)
	for range k {
		i := r.IntN(n)
		picked = append(picked, candidates[i])
		n--
		candidates[i] = candidates[n]
	}
	return picked
}

// Mine places count mines on distinct cells.
//
// panics [AssertionError]
func (f *Minefield) Mine(r Rand, count int) {
	for _, i := range Sample(r, len(f.data), count) {
		f.data[i] = Mined
	}
}

// SafestCell returns a non-mined cell with the lowest neighbour count. Ties
// are broken by scanning the cells in a random order.
//
// panics [AssertionError]
func (f *Minefield) SafestCell(r Rand) (pos Position, count int) {
	count = -1
	for _, i := range r.Perm(len(f.data)) {
		p := f.position(i)
		n, ok := f.Number(p)
		if !ok {
			continue
		}
		if count < 0 || n < count {
			pos, count = p, n
			if n == 0 {
				break /* can't do better than that */
			}
		}
	}
	if count < 0 {
		panic(AssertionError{ErrNoSafeCell, fmt.Sprintf("%dx%d", f.width, f.Height())})
	}
	return pos, count
}
