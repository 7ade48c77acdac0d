package zrsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	for a := int64(0); a < 40; a++ {
		for b := int64(0); b < 40; b++ {
			g, x, y := ExtendedGCD(big.NewInt(a), big.NewInt(b))

			want := new(big.Int).GCD(nil, nil, big.NewInt(a), big.NewInt(b))
			assert.Zero(t, want.Cmp(g), "gcd(%d, %d)", a, b)

			// a*x + b*y = g
			lhs := new(big.Int).Mul(big.NewInt(a), x)
			lhs.Add(lhs, new(big.Int).Mul(big.NewInt(b), y))
			assert.Zero(t, lhs.Cmp(g), "bezout(%d, %d): x=%s y=%s", a, b, x, y)
		}
	}
}

func TestExtendedGCDBaseCase(t *testing.T) {
	g, x, y := ExtendedGCD(big.NewInt(42), big.NewInt(0))
	assert.Equal(t, int64(42), g.Int64())
	assert.Equal(t, int64(1), x.Int64())
	assert.Equal(t, int64(0), y.Int64())
}

func TestGCDAndCoprime(t *testing.T) {
	assert.Equal(t, int64(6), GCD(big.NewInt(54), big.NewInt(24)).Int64())
	assert.Equal(t, int64(6), GCD(big.NewInt(24), big.NewInt(54)).Int64())
	assert.Equal(t, int64(7), GCD(big.NewInt(7), big.NewInt(0)).Int64())
	assert.True(t, Coprime(big.NewInt(17), big.NewInt(3120)))
	assert.False(t, Coprime(big.NewInt(24), big.NewInt(3120)))
}

func TestModInverse(t *testing.T) {
	d, err := ModInverse(big.NewInt(17), big.NewInt(3120))
	require.NoError(t, err)
	assert.Equal(t, int64(2753), d.Int64())

	for m := int64(2); m < 60; m++ {
		for a := int64(1); a < m; a++ {
			d, err := ModInverse(big.NewInt(a), big.NewInt(m))
			if new(big.Int).GCD(nil, nil, big.NewInt(a), big.NewInt(m)).Int64() != 1 {
				assert.ErrorIs(t, err, ErrNoInverse, "a=%d m=%d", a, m)
				continue
			}
			require.NoError(t, err)
			assert.True(t, d.Sign() > 0 && d.Int64() < m, "d=%s out of (0, %d)", d, m)
			assert.Equal(t, int64(1), a*d.Int64()%m, "a=%d m=%d", a, m)
		}
	}
}

func TestModInverseNoInverse(t *testing.T) {
	_, err := ModInverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrNoInverse)
}

func naivePowMod(a, b, m int64) int64 {
	r := 1 % m
	for i := int64(0); i < b; i++ {
		r = r * a % m
	}
	return r
}

func TestFastPowModMatchesNaive(t *testing.T) {
	for m := int64(1); m <= 30; m++ {
		for a := int64(0); a <= 30; a++ {
			for b := int64(0); b <= 30; b++ {
				got := FastPowMod(big.NewInt(a), big.NewInt(b), big.NewInt(m))
				assert.Equal(t, naivePowMod(a, b, m), got.Int64(), "%d^%d mod %d", a, b, m)
			}
		}
	}
}

func TestFastPowModLargeOperands(t *testing.T) {
	// n close to 49999^2, where squaring overflows 64-bit arithmetic
	base := big.NewInt(2499800000)
	exp := big.NewInt(1234567891)
	mod := big.NewInt(2499900001)

	want := new(big.Int).Exp(base, exp, mod)
	assert.Zero(t, want.Cmp(FastPowMod(base, exp, mod)))
}

func TestFastPowModDoesNotMutate(t *testing.T) {
	base, exp, mod := big.NewInt(65), big.NewInt(17), big.NewInt(3233)
	assert.Equal(t, int64(2790), FastPowMod(base, exp, mod).Int64())
	assert.Equal(t, int64(65), base.Int64())
	assert.Equal(t, int64(17), exp.Int64())
	assert.Equal(t, int64(3233), mod.Int64())
}
