package zrsa

import (
	"crypto/rand"
	"io"
	"math/big"
)

const millerRabinRounds = 20

var two = big.NewInt(2)

// IsProbablePrime runs millerRabinRounds rounds of Miller-Rabin with bases
// drawn from random. Values below 2 are never prime.
func IsProbablePrime(random io.Reader, n *big.Int) (bool, error) {
	if random == nil {
		random = rand.Reader
	}
	if n.Cmp(two) == 0 || n.Cmp(big.NewInt(3)) == 0 {
		return true, nil
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false, nil
	}

	nMinus1 := new(big.Int).Sub(n, one)

	// n - 1 = 2^r * d
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	for i := 0; i < millerRabinRounds; i++ {
		// a in [2, n-2]
		a, err := rand.Int(random, new(big.Int).Sub(n, big.NewInt(3)))
		if err != nil {
			return false, err
		}
		a.Add(a, two)

		x := FastPowMod(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		witness := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}
	return true, nil
}
