package zrsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"zrsa/internal/logging"
)

// Generator derives keypairs from a shared, read-only prime table. A
// Generator holds no key state; every Generate call returns a fresh,
// independent pair.
type Generator struct {
	table  *PrimeTable
	cfg    Config
	random io.Reader
	logger logging.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom sets the randomness source for prime index selection.
// Defaults to crypto/rand.Reader. A generator shared between goroutines
// needs a reader that is safe for concurrent use.
func WithRandom(random io.Reader) Option {
	return func(g *Generator) { g.random = random }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator validates cfg against table. An undersized table fails here
// with ErrInsufficientPrimePool rather than at generation time.
func NewGenerator(table *PrimeTable, cfg Config, opts ...Option) (*Generator, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil prime table", ErrInsufficientPrimePool)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.checkPool(table); err != nil {
		return nil, err
	}

	g := &Generator{
		table:  table,
		cfg:    cfg,
		random: rand.Reader,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewDefaultGenerator builds (or reuses) the prime table for cfg.PrimeBound
// and returns a generator over it.
func NewDefaultGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var table *PrimeTable
	if cfg.PrimeBound == DefaultPrimeBound {
		table = DefaultPrimeTable()
	} else {
		var err error
		table, err = BuildPrimeTable(cfg.PrimeBound)
		if err != nil {
			return nil, err
		}
	}
	return NewGenerator(table, cfg, opts...)
}

// Table returns the prime table the generator samples from.
func (g *Generator) Table() *PrimeTable { return g.table }

// Generate samples two distinct primes from the table and derives a keypair
// from them.
func (g *Generator) Generate() (*PublicKey, *PrivateKey, error) {
	span := big.NewInt(int64(g.table.Len() - g.cfg.IndexOffset))

	var i, j int
	for attempts := 1; ; attempts++ {
		a, err := rand.Int(g.random, span)
		if err != nil {
			return nil, nil, fmt.Errorf("sample prime index: %w", err)
		}
		b, err := rand.Int(g.random, span)
		if err != nil {
			return nil, nil, fmt.Errorf("sample prime index: %w", err)
		}
		i = g.cfg.IndexOffset + int(a.Int64())
		j = g.cfg.IndexOffset + int(b.Int64())
		if i != j {
			break
		}
		g.logger.Debug("prime indices collided, resampling", "index", i, "attempt", attempts)
	}

	p := big.NewInt(g.table.At(i))
	q := big.NewInt(g.table.At(j))

	pub, priv, err := deriveKeyPair(p, q, g.cfg.ExponentBase, g.cfg.MaxExponentSteps)
	if err != nil {
		return nil, nil, err
	}

	g.logger.Debug("keypair generated",
		"e", pub.E.String(),
		"n", pub.N.String(),
		"bits", pub.N.BitLen(),
		logging.Redacted("d"),
		logging.Redacted("p"),
		logging.Redacted("q"),
	)
	return pub, priv, nil
}

// DeriveKeyPair builds a keypair from two caller-supplied primes. The public
// exponent is the first value at or above eBase that is coprime to
// (p-1)(q-1), searched for at most maxSteps increments.
func DeriveKeyPair(p, q *big.Int, eBase int64, maxSteps int) (*PublicKey, *PrivateKey, error) {
	if p.Cmp(q) == 0 {
		return nil, nil, ErrEqualPrimes
	}
	for _, v := range []*big.Int{p, q} {
		ok, err := IsProbablePrime(rand.Reader, v)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotPrime, v)
		}
	}
	return deriveKeyPair(p, q, eBase, maxSteps)
}

// deriveKeyPair assumes p and q are distinct primes.
func deriveKeyPair(p, q *big.Int, eBase int64, maxSteps int) (*PublicKey, *PrivateKey, error) {
	// n = p * q
	n := new(big.Int).Mul(p, q)

	// phi(n) = (p-1)(q-1)
	phi := totient(p, q)

	e, err := findPublicExponent(eBase, phi, maxSteps)
	if err != nil {
		return nil, nil, err
	}

	// d = e^(-1) mod phi(n)
	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, nil, fmt.Errorf("derive private exponent: %w", err)
	}

	pub := &PublicKey{N: n, E: e}
	priv := &PrivateKey{
		N: new(big.Int).Set(n),
		D: d,
		P: new(big.Int).Set(p),
		Q: new(big.Int).Set(q),
	}
	return pub, priv, nil
}

func totient(p, q *big.Int) *big.Int {
	p1 := new(big.Int).Sub(p, one)
	q1 := new(big.Int).Sub(q, one)
	return p1.Mul(p1, q1)
}

// findPublicExponent walks e = eBase, eBase+1, ... until gcd(e, phi) == 1.
// The candidate must stay below phi.
func findPublicExponent(eBase int64, phi *big.Int, maxSteps int) (*big.Int, error) {
	e := big.NewInt(eBase)
	for step := 0; step <= maxSteps; step++ {
		if e.Cmp(phi) >= 0 {
			break
		}
		if Coprime(e, phi) {
			return e, nil
		}
		e.Add(e, one)
	}
	return nil, fmt.Errorf("%w: base %d, phi %s, %d steps", ErrExponentSearchExhausted, eBase, phi, maxSteps)
}
