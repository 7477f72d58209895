package display

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFontNotFound is returned when no search directory holds every required font.
var ErrFontNotFound = errors.New("display: fonts not found")

// RequiredFonts are the BDF files the panel layout is sized for.
var RequiredFonts = []string{string(FontLarge) + ".bdf", string(FontSmall) + ".bdf"}

// FontSearchDirs lists candidate directories in lookup order. An explicit dir is tried first.
func FontSearchDirs(explicit string) []string {
	var dirs []string
	if explicit != "" {
		dirs = append(dirs, explicit)
	}
	dirs = append(dirs, "fonts", "/home/pi/rpi-rgb-led-matrix/fonts")
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "rpi-rgb-led-matrix", "fonts"))
	}
	return dirs
}

// FindFontDir returns the first directory containing every required font.
func FindFontDir(dirs []string) (string, error) {
	for _, dir := range dirs {
		if hasFonts(dir) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w (checked %s)", ErrFontNotFound, strings.Join(dirs, ", "))
}

func hasFonts(dir string) bool {
	for _, name := range RequiredFonts {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}
