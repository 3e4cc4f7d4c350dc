// Package qrcode renders the join link shown on the board display.
package qrcode

import (
	"fmt"
	"net/url"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

// JoinURL is the link a phone opens to take a seat in gameID.
func JoinURL(host, gameID string) string {
	return fmt.Sprintf("http://%s/lobby.html?game=%s", host, url.QueryEscape(gameID))
}

// Generate creates a QR code PNG image for the given URL. Sizes outside
// 64..1024 fall back to DefaultSize.
func Generate(link string, size int) ([]byte, error) {
	if size < 64 || size > 1024 {
		size = DefaultSize
	}
	return qr.Encode(link, qr.Medium, size)
}
