// Package auth issues and checks seat tokens. A token binds a player id
// to one room so a websocket cannot claim someone else's seat.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var (
	ErrInvalidToken  = errors.New("invalid seat token")
	ErrTokenMismatch = errors.New("seat token is for another player or game")
)

// DefaultTTL is how long a seat token stays valid.
const DefaultTTL = 12 * time.Hour

// Signer mints and verifies HS256 seat tokens.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a token for playerID in gameID.
func (s *Signer) Issue(gameID, playerID string) (string, error) {
	if gameID == "" || playerID == "" {
		return "", fmt.Errorf("game and player are required")
	}
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  playerID,
		"game": gameID,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and that it was
// issued for playerID in gameID.
func (s *Signer) Verify(tokenString, gameID, playerID string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ErrInvalidToken
	}
	if sub, _ := claims["sub"].(string); sub != playerID {
		return ErrTokenMismatch
	}
	if game, _ := claims["game"].(string); game != gameID {
		return ErrTokenMismatch
	}
	return nil
}
