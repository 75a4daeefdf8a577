package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

const screenshotTimeFormat = "20060102-150405.000"

func ScreenshotName(now time.Time) string {
	return "screenshot-" + now.Format(screenshotTimeFormat) + ".png"
}

// SaveScreenshot writes img as a png into dir, creating dir if needed, and returns the file path
func SaveScreenshot(dir string, img image.Image, now time.Time) (string, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory '%s'. Err: %w", dir, err)
	}

	path := filepath.Join(dir, ScreenshotName(now))
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("failed to save screenshot '%s'. Err: %w", path, err)
	}

	return path, nil
}
