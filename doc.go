// Package zrsa is a textbook RSA cryptosystem over small primes.
//
// A PrimeTable holds every prime below a bound (50000 by default). A
// Generator samples two distinct primes from the table, skipping the smallest
// ones, and derives a PublicKey {e, n} and PrivateKey {d, n, p, q}: e is the
// first integer from 23 upward coprime to (p-1)(q-1), d its modular inverse.
// Encrypt and Decrypt are both modular exponentiation with the matching
// exponent.
//
// The moduli are around 2^30. This package is for teaching and
// experimentation; it offers no confidentiality, no padding and no
// constant-time guarantees.
//
//	gen, err := zrsa.NewGenerator(zrsa.DefaultPrimeTable(), zrsa.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	pub, priv, err := gen.Generate()
//	if err != nil {
//	    return err
//	}
//	c := zrsa.Encrypt(pub, big.NewInt(65))
//	m := zrsa.Decrypt(priv, c) // 65
package zrsa
