package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the field as an 8-bit RGBA PNG.
func (f *Field) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, f.Image()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the field to path, replacing any existing file.
func (f *Field) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := f.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
