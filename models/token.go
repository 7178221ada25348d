package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of tokens issued by the server.
// Besides the registered claims it duplicates the user id and email
// so that clients can read them without a profile round trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	UserID int64  `json:"userId"`
	Email  string `json:"email,omitempty"`
}

// Token is an issued or parsed JWT. SignedString is what travels in the
// Authorization header.
type Token struct {
	*jwt.Token `json:"-"`
	TokenClaims
	SignedString string `json:"-"`
}

// GetUserID reads the user id from the "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("token subject: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", sub, err)
	}
	return id, nil
}

func (t *Token) String() string {
	return t.SignedString
}
