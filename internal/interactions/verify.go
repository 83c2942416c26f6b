package interactions

import (
	"crypto/ed25519"
	"encoding/hex"
)

// VerifySignature checks Discord's Ed25519 signature over timestamp+body.
func VerifySignature(publicKeyHex string, timestamp string, body []byte, signatureHex string) bool {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return false
	}

	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}

	signed := make([]byte, 0, len(timestamp)+len(body))
	signed = append(signed, timestamp...)
	signed = append(signed, body...)

	return ed25519.Verify(ed25519.PublicKey(key), signed, sig)
}
