package zrsa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsProbablePrime(t *testing.T) {
	for v := int64(0); v < 3000; v++ {
		ok, err := IsProbablePrime(rand.Reader, big.NewInt(v))
		require.NoError(t, err)
		assert.Equal(t, isPrimeNaive(v), ok, "value %d", v)
	}
}

func TestIsProbablePrimeCarmichael(t *testing.T) {
	for _, v := range []int64{561, 1105, 1729, 2465, 2821, 6601, 8911, 41041} {
		ok, err := IsProbablePrime(nil, big.NewInt(v))
		require.NoError(t, err)
		assert.False(t, ok, "%d", v)
	}
}
