package ecdsa

import (
	"io"

	sha256simd "github.com/minio/sha256-simd"
)

// HashMessage returns the SHA-256 digest signed by SignMessage.
func HashMessage(msg []byte) []byte {
	h := sha256simd.Sum256(msg)
	return h[:]
}

// SignMessage hashes msg with SHA-256 and returns the DER encoded signature
// of the digest.
func SignMessage(csprng io.Reader, priv *PrivateKey, msg []byte) ([]byte, error) {
	return SignASN1(csprng, priv, HashMessage(msg))
}

// VerifyMessage reports whether sig is a valid DER encoded signature of the
// SHA-256 digest of msg.
func VerifyMessage(pub *PublicKey, msg, sig []byte) bool {
	return VerifyASN1(pub, HashMessage(msg), sig)
}
