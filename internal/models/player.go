// internal/models/player.go
package models

// RGBA is a token color; every channel must be within 0..255.
type RGBA [4]int

// TokenImage references a bundled token image by name and color variant.
type TokenImage struct {
	Name         string `json:"name"`
	ColorVariant string `json:"color_variant"`
}

// TokenStyle is the visual appearance of a player's play token.
type TokenStyle struct {
	Color RGBA `json:"color"`

	// ImgSrc and Img are alternative image representations; both are optional.
	ImgSrc *string     `json:"img_src,omitempty"`
	Img    *TokenImage `json:"img,omitempty"`
}

// Player is the hosting player's appearance as sent with a create-game payload.
type Player struct {
	Name       string     `json:"name"`
	TokenStyle TokenStyle `json:"token_style"`
}
