package zrsa

import (
	"math/big"
)

var one = big.NewInt(1)

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients x, y
// such that a*x + b*y = g.
func ExtendedGCD(a, b *big.Int) (*big.Int, *big.Int, *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}

	// Mod is Euclidean, Div matches it, so a = (a/b)*b + a mod b holds for
	// the non-negative inputs this package uses
	gcd, x1, y1 := ExtendedGCD(b, new(big.Int).Mod(a, b))

	x := new(big.Int).Set(y1)
	y := new(big.Int).Sub(x1, new(big.Int).Mul(new(big.Int).Div(a, b), y1))

	return gcd, x, y
}

// GCD is the plain Euclidean algorithm on non-negative inputs.
func GCD(a, b *big.Int) *big.Int {
	r1 := new(big.Int).Abs(a)
	r2 := new(big.Int).Abs(b)
	for r2.Sign() != 0 {
		r1.Mod(r1, r2)
		r1, r2 = r2, r1
	}
	return r1
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ModInverse returns d in (0, m) with a*d = 1 (mod m), or ErrNoInverse when
// a and m share a factor.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNoInverse
	}
	gcd, x, _ := ExtendedGCD(a, m)
	if gcd.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}

	d := new(big.Int).Mod(x, m)
	for d.Sign() <= 0 {
		d.Add(d, m)
	}
	return d, nil
}

// FastPowMod computes base^exponent mod modulus by square-and-multiply,
// walking the exponent bits from least to most significant. exponent must be
// non-negative and modulus positive.
func FastPowMod(base, exponent, modulus *big.Int) *big.Int {
	ret := big.NewInt(1)
	tmp := new(big.Int).Mod(base, modulus)

	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			ret.Mul(ret, tmp).Mod(ret, modulus)
		}
		tmp.Mul(tmp, tmp).Mod(tmp, modulus)
	}

	// x^0 mod 1 is 0
	return ret.Mod(ret, modulus)
}
