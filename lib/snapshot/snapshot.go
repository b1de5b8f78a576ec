// Package snapshot encodes the set of inserted style names so a later
// request can skip re-emitting rules the client already has.
//
// Tokens are msgpack payloads signed with HMAC-SHA256 and encoded as
// base64url "payload.signature". They are visible but tamper-proof: a
// client can read which names it has, but cannot forge a token that
// suppresses rules it never received.
package snapshot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("snapshot: invalid token format")
	ErrSignatureInvalid = errors.New("snapshot: signature verification failed")
	ErrEmptyKey         = errors.New("snapshot: signing key is empty")
)

// State is the encoded part of a render context.
type State struct {
	Key   string   `msgpack:"k"`
	Names []string `msgpack:"n"`
}

// Codec signs and verifies snapshot tokens.
type Codec struct {
	key []byte
}

// NewCodec creates a codec for the given signing key. Keys shorter than 32
// bytes are stretched with SHA-256.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Codec{key: key}, nil
}

// Encode serializes and signs st.
func (c *Codec) Encode(st State) (string, error) {
	packed, err := msgpack.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("snapshot: encode: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(packed) + "." + c.sign(packed), nil
}

// Decode verifies and deserializes a token produced by Encode.
func (c *Codec) Decode(token string) (State, error) {
	var st State

	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return st, ErrInvalidFormat
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return st, ErrInvalidFormat
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(data))) {
		return st, ErrSignatureInvalid
	}
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return st, nil
}

func (c *Codec) sign(data []byte) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
}
