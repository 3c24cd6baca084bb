package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager управляет загрузкой и кэшированием шрифтов по размеру.
type FontManager struct {
	tt    *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager парсит встроенный Go Regular, чтобы не зависеть от файлов рядом с бинарником.
func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{
		tt:    tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face возвращает шрифт нужного размера, создавая его при первом обращении.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %v pt face: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// TTF returns the raw font bytes for renderers that load fonts themselves.
func (m *FontManager) TTF() []byte {
	return goregular.TTF
}

// Unload закрывает все созданные шрифты.
func (m *FontManager) Unload() {
	for size, face := range m.faces {
		_ = face.Close()
		delete(m.faces, size)
	}
}
