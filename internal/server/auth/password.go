package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used when none is configured.
const DefaultHashCost = 10

// PasswordHasher produces and checks self-describing bcrypt digests.
// The digest embeds salt and cost, so Compare needs no configuration.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// Zero means DefaultHashCost.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultHashCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, common.NewConfigurationError(
			fmt.Sprintf("password hash cost must be between %d and %d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, cost))
	}
	return &PasswordHasher{cost: cost}, nil
}

// Cost returns the configured work factor.
func (h *PasswordHasher) Cost() int { return h.cost }

// Hash derives a salted digest of plaintext. Each call uses a fresh salt.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", common.NewSystemError(common.CodeHashing, common.MsgHashing, err)
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches digest. A mismatch is not an
// error; only a digest that cannot be parsed is.
func (h *PasswordHasher) Compare(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, common.NewSystemError(common.CodeHashing, common.MsgHashing, err)
	}
}
