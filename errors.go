package zrsa

import "errors"

var (
	// ErrNoInverse is returned by ModInverse when gcd(a, m) != 1.
	ErrNoInverse = errors.New("no modular inverse exists")

	// ErrInsufficientPrimePool means the prime table cannot supply two distinct
	// primes at or above the configured index offset.
	ErrInsufficientPrimePool = errors.New("insufficient prime pool")

	ErrInvalidBound = errors.New("prime table bound must be at least 2")

	ErrEqualPrimes = errors.New("p and q must be distinct")
	ErrNotPrime    = errors.New("value is not prime")

	// ErrExponentSearchExhausted is returned when no public exponent coprime to
	// the totient was found within the configured number of increments.
	ErrExponentSearchExhausted = errors.New("public exponent search exhausted")

	ErrInvalidConfig = errors.New("invalid generator config")
)
