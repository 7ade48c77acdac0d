package zrsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbookKeys(t *testing.T) (*PublicKey, *PrivateKey) {
	t.Helper()
	pub, priv, err := DeriveKeyPair(big.NewInt(61), big.NewInt(53), 17, DefaultMaxExponentSteps)
	require.NoError(t, err)
	return pub, priv
}

func TestEncryptDecryptExhaustiveSmallModulus(t *testing.T) {
	pub, priv := textbookKeys(t)
	for m := int64(0); m < 3233; m++ {
		c := Encrypt(pub, big.NewInt(m))
		assert.Equal(t, m, Decrypt(priv, c).Int64(), "m=%d", m)
	}
}

func TestEncryptOutOfRangeReduces(t *testing.T) {
	pub, priv := textbookKeys(t)

	m := big.NewInt(65)
	shifted := new(big.Int).Add(m, pub.N)
	assert.False(t, pub.InRange(shifted))
	assert.Zero(t, Encrypt(pub, m).Cmp(Encrypt(pub, shifted)))
	assert.Equal(t, int64(65), Decrypt(priv, Encrypt(pub, shifted)).Int64())

	negative := big.NewInt(-1)
	assert.False(t, pub.InRange(negative))
	assert.Equal(t, int64(3232), Decrypt(priv, Encrypt(pub, negative)).Int64())
}

func TestInRange(t *testing.T) {
	pub, _ := textbookKeys(t)
	assert.True(t, pub.InRange(big.NewInt(0)))
	assert.True(t, pub.InRange(big.NewInt(3232)))
	assert.False(t, pub.InRange(big.NewInt(3233)))
}

func TestEncryptText(t *testing.T) {
	gen := newTestGenerator(t)
	pub, priv, err := gen.Generate()
	require.NoError(t, err)

	for _, s := range []string{"", "A", "Hello, world!", "i am a squid", "\x00\xff\x7f", "привет"} {
		codes := EncryptText(pub, s)
		assert.Len(t, codes, len(s))
		assert.Equal(t, s, DecryptText(priv, codes))
	}
}

func TestEncryptTextCodes(t *testing.T) {
	pub, priv := textbookKeys(t)

	codes := EncryptText(pub, "AA")
	require.Len(t, codes, 2)
	assert.Equal(t, int64(2790), codes[0].Int64())
	assert.Equal(t, int64(2790), codes[1].Int64())

	plain := DecryptCodes(priv, codes)
	assert.Equal(t, int64(65), plain[0].Int64())
	assert.Equal(t, "AA", DecryptText(priv, codes))
}

func TestFingerprint(t *testing.T) {
	pub, _ := textbookKeys(t)
	fp := pub.Fingerprint()
	assert.Len(t, fp, 40)
	assert.Equal(t, fp, (&PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}).Fingerprint())
	assert.NotEqual(t, fp, (&PublicKey{E: big.NewInt(23), N: big.NewInt(3233)}).Fingerprint())
}
