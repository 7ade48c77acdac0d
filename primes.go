package zrsa

import (
	"math"
	"sort"
	"sync"
)

// DefaultPrimeBound is the sieve bound used by DefaultPrimeTable.
const DefaultPrimeBound = 50000

// PrimeTable is the ascending list of all primes below Bound. It is never
// modified after BuildPrimeTable returns, so one table can be shared by any
// number of generators.
type PrimeTable struct {
	bound  int
	primes []int64
}

// BuildPrimeTable runs a sieve of Eratosthenes over [0, bound).
func BuildPrimeTable(bound int) (*PrimeTable, error) {
	if bound < 2 {
		return nil, ErrInvalidBound
	}

	// even indices start composite, 2 is fixed up below
	prime := make([]bool, bound)
	for i := 3; i < bound; i += 2 {
		prime[i] = true
	}
	if bound > 2 {
		prime[2] = true
	}

	for i := 3; i*i < bound; i += 2 {
		if !prime[i] {
			continue
		}
		for j := i + i; j < bound; j += i {
			prime[j] = false
		}
	}

	primes := make([]int64, 0, estimatePrimeCount(bound))
	for i, ok := range prime {
		if ok {
			primes = append(primes, int64(i))
		}
	}

	return &PrimeTable{bound: bound, primes: primes}, nil
}

// estimatePrimeCount over-approximates pi(bound) so the output slice is
// allocated once.
func estimatePrimeCount(bound int) int {
	return int(1.3*float64(bound)/math.Log(float64(bound))) + 1
}

var (
	defaultTable     *PrimeTable
	defaultTableOnce sync.Once
)

// DefaultPrimeTable returns the process-wide table of primes below
// DefaultPrimeBound. It is built on first use.
func DefaultPrimeTable() *PrimeTable {
	defaultTableOnce.Do(func() {
		// DefaultPrimeBound is a valid bound, error is impossible
		defaultTable, _ = BuildPrimeTable(DefaultPrimeBound)
	})
	return defaultTable
}

func (t *PrimeTable) Bound() int { return t.bound }

func (t *PrimeTable) Len() int { return len(t.primes) }

// At returns the i-th prime (0-based). It panics if i is out of range.
func (t *PrimeTable) At(i int) int64 { return t.primes[i] }

// Primes returns a copy of the table.
func (t *PrimeTable) Primes() []int64 {
	out := make([]int64, len(t.primes))
	copy(out, t.primes)
	return out
}

// Contains reports whether v is one of the sieved primes.
func (t *PrimeTable) Contains(v int64) bool {
	i := sort.Search(len(t.primes), func(i int) bool { return t.primes[i] >= v })
	return i < len(t.primes) && t.primes[i] == v
}
