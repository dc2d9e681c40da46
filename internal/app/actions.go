package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/sqweek/dialog"
	imgclip "golang.design/x/clipboard"
)

// systemActions talks to the desktop: the text clipboard, the image
// clipboard and the native save dialog.
type systemActions struct {
	once    sync.Once
	initErr error
}

func newSystemActions() *systemActions { return &systemActions{} }

func (s *systemActions) CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy text: %w", err)
	}
	return nil
}

func (s *systemActions) CopyImage(png []byte) error {
	s.once.Do(func() { s.initErr = imgclip.Init() })
	if s.initErr != nil {
		return fmt.Errorf("image clipboard: %w", s.initErr)
	}
	imgclip.Write(imgclip.FmtImage, png)
	return nil
}

func (s *systemActions) SaveImage(suggested string, png []byte) (string, error) {
	path, err := dialog.File().Filter("PNG image", "png").Title("Exportar foto").SetStartFile(suggested).Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}
	path = filepath.Clean(path)
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
