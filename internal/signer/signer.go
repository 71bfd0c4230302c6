package signer

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/NethermindEth/starknet.go/curve"
	"golang.org/x/crypto/sha3"
)

// msgHashModulus is the Stark curve order. EdgeX reduces the Keccak-256
// message hash modulo this value before signing, matching the official
// implementation.
var msgHashModulus, _ = new(big.Int).SetString(
	"0800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f", 16)

// Signer signs EdgeX private API requests with a Stark curve key.
// The public key point is derived once at construction.
type Signer struct {
	privateKey *big.Int
	pubX       *big.Int
	pubY       *big.Int
}

// New creates a Signer from a hex-encoded private key.
// A 0x prefix is stripped if present.
func New(privateKeyHex string) (*Signer, error) {
	privateKeyHex = strings.TrimPrefix(strings.TrimPrefix(privateKeyHex, "0x"), "0X")
	if privateKeyHex == "" {
		return nil, errors.New("private key is empty")
	}

	privateKey, ok := new(big.Int).SetString(privateKeyHex, 16)
	if !ok {
		return nil, errors.New("private key is not valid hex")
	}

	pubX, pubY, err := curve.Curve.PrivateToPoint(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}

	return &Signer{
		privateKey: privateKey,
		pubX:       pubX,
		pubY:       pubY,
	}, nil
}

// BuildMessage builds the string that gets signed: the timestamp
// (unix milliseconds), the upper-case HTTP method, the request path and
// the query parameters joined as k=v pairs in ascending key order.
func BuildMessage(timestamp, httpMethod, requestPath string, queryParams map[string]string) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(queryParams))
	for _, k := range keys {
		pairs = append(pairs, k+"="+queryParams[k])
	}

	return timestamp + strings.ToUpper(httpMethod) + requestPath + strings.Join(pairs, "&")
}

// HashMessage computes the Keccak-256 hash of the message, interpreted
// big-endian and reduced modulo the Stark curve order.
func HashMessage(message string) *big.Int {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(message))

	msgHash := new(big.Int).SetBytes(h.Sum(nil))
	return msgHash.Mod(msgHash, msgHashModulus)
}

// SignRequest signs the request described by the arguments and returns the
// final signature: r || s || publicKeyY, each as 64 lowercase hex chars
// (192 in total).
func (s *Signer) SignRequest(timestamp, httpMethod, requestPath string, queryParams map[string]string) (string, error) {
	message := BuildMessage(timestamp, httpMethod, requestPath, queryParams)
	msgHash := HashMessage(message)

	r, sv, err := curve.Curve.Sign(msgHash, s.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}

	return fmt.Sprintf("%064x%064x%064x", r, sv, s.pubY), nil
}

// Verify reports whether (r, s) is a valid signature of msgHash under the
// signer's public key.
func (s *Signer) Verify(msgHash, r, sv *big.Int) bool {
	return curve.Curve.Verify(msgHash, r, sv, s.pubX, s.pubY)
}

// PublicKeyY returns the Y coordinate of the public key point, the value
// appended to every request signature.
func (s *Signer) PublicKeyY() *big.Int {
	return new(big.Int).Set(s.pubY)
}
