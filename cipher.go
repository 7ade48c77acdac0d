package zrsa

import (
	"crypto/sha1"
	"encoding/hex"
	"math/big"
	"strings"
)

type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey keeps the factors of N next to the private exponent.
type PrivateKey struct {
	D *big.Int
	N *big.Int
	P *big.Int // простое p
	Q *big.Int // простое q
}

// Totient returns (p-1)(q-1).
func (k *PrivateKey) Totient() *big.Int {
	return totient(k.P, k.Q)
}

// InRange reports whether 0 <= m < n, the domain on which Encrypt and Decrypt
// are inverses.
func (k *PublicKey) InRange(m *big.Int) bool {
	return m.Sign() >= 0 && m.Cmp(k.N) < 0
}

// Fingerprint is the hex SHA-1 of "e:n". It identifies a public key without
// carrying it.
func (k *PublicKey) Fingerprint() string {
	h := sha1.New()
	h.Write([]byte(k.E.String() + ":" + k.N.String()))
	return hex.EncodeToString(h.Sum(nil))
}

// Encrypt returns m^e mod n.
//
// Messages outside [0, n) are not rejected: they are reduced mod n first, so
// decrypting the result yields m mod n rather than m. Use InRange to check.
func Encrypt(pub *PublicKey, m *big.Int) *big.Int {
	// c = m^e mod n
	return FastPowMod(m, pub.E, pub.N)
}

// Decrypt returns c^d mod n.
func Decrypt(priv *PrivateKey, c *big.Int) *big.Int {
	// m = c^d mod n
	return FastPowMod(c, priv.D, priv.N)
}

// EncryptText encrypts s one byte at a time. Every byte value is below any
// modulus the generator produces, so each code round-trips exactly.
func EncryptText(pub *PublicKey, s string) []*big.Int {
	codes := make([]*big.Int, 0, len(s))
	for i := 0; i < len(s); i++ {
		codes = append(codes, Encrypt(pub, big.NewInt(int64(s[i]))))
	}
	return codes
}

// DecryptCodes decrypts each ciphertext code.
func DecryptCodes(priv *PrivateKey, codes []*big.Int) []*big.Int {
	out := make([]*big.Int, len(codes))
	for i, c := range codes {
		out[i] = Decrypt(priv, c)
	}
	return out
}

// DecryptText decrypts codes produced by EncryptText and reassembles the
// bytes. Decrypted values above 255 keep only their low byte.
func DecryptText(priv *PrivateKey, codes []*big.Int) string {
	var sb strings.Builder
	sb.Grow(len(codes))
	for _, m := range DecryptCodes(priv, codes) {
		sb.WriteByte(byte(m.Uint64()))
	}
	return sb.String()
}
