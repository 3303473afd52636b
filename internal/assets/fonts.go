// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	RegularFontSize = 14
	TitleFontSize   = 32
)

// Fonts — шрифты интерфейса.
type Fonts struct {
	Regular font.Face
	Title   font.Face
}

// LoadFonts собирает шрифты из встроенного Go Regular, файлы не нужны.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	regular, err := newFace(tt, RegularFontSize)
	if err != nil {
		return nil, err
	}
	title, err := newFace(tt, TitleFontSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{Regular: regular, Title: title}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %vpt face: %w", size, err)
	}
	return face, nil
}
