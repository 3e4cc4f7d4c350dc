package server

import (
	"github.com/google/uuid"

	"settlers/internal/auth"
	"settlers/internal/protocol"
)

// GeneratePlayerID creates a unique player ID.
func GeneratePlayerID() string {
	return uuid.NewString()
}

// NewSession issues a fresh player id for gameID together with the token
// the player presents when connecting.
func NewSession(signer *auth.Signer, gameID string) (protocol.PlayerIDResponse, error) {
	id := GeneratePlayerID()
	token, err := signer.Issue(gameID, id)
	if err != nil {
		return protocol.PlayerIDResponse{}, err
	}
	return protocol.PlayerIDResponse{ID: id, Token: token}, nil
}
