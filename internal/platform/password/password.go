package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	PlainScheme  = "plain"
	BcryptScheme = "bcrypt"
)

// Scheme encodes passwords at rest and checks candidates against them.
type Scheme interface {
	Name() string
	Encode(password string) (string, error)
	Compare(encoded, password string) bool
}

// Lookup returns the scheme registered under name. cost only applies to
// bcrypt, where 0 selects bcrypt.DefaultCost.
func Lookup(name string, cost int) (Scheme, error) {
	switch name {
	case PlainScheme:
		return Plain{}, nil
	case BcryptScheme:
		if cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
			return nil, fmt.Errorf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return NewBcrypt(cost), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// Plain stores passwords verbatim.
type Plain struct{}

func (Plain) Name() string { return PlainScheme }

func (Plain) Encode(password string) (string, error) {
	return password, nil
}

func (Plain) Compare(encoded, password string) bool {
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(password)) == 1
}

// Bcrypt hashes a SHA-256 digest of the password, so passwords longer than
// bcrypt's 72-byte input limit are accepted and not truncated.
type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Name() string { return BcryptScheme }

func (b *Bcrypt) Encode(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(prehash(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

func (b *Bcrypt) Compare(encoded, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), prehash(password)) == nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
