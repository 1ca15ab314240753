package assets

import (
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tetrapod/wallflower/config"
)

// Sheet is the loaded sprite sheet: the atlas image, the per-frame pixel
// size, and a cache of sliced sub-images keyed by absolute sheet index.
type Sheet struct {
	Image          *ebiten.Image
	FrameW, FrameH int

	frames map[int]*ebiten.Image
}

var (
	sheet       *Sheet
	loadFailed  bool
	loadWarning bool
)

// Current returns the loaded sheet, or nil while loading hasn't succeeded.
// Callers skip their tick on nil and retry next tick.
func Current() *Sheet {
	if sheet == nil && !loadFailed {
		tryLoad(config.Debug.SheetPath)
	}
	return sheet
}

func tryLoad(path string) {
	f, err := os.Open(path)
	if err != nil {
		if !loadWarning {
			log.Printf("Warning: could not open sprite sheet %q: %v (retrying)", path, err)
			loadWarning = true
		}
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("Warning: could not decode sprite sheet %q: %v", path, err)
		loadFailed = true
		return
	}

	b := img.Bounds()
	sheet = &Sheet{
		Image:  ebiten.NewImageFromImage(img),
		FrameW: b.Dx() / config.SheetCols,
		FrameH: b.Dy() / config.SheetRows,
		frames: make(map[int]*ebiten.Image),
	}
}

// Frame returns the sub-image for an absolute sheet index, slicing and
// caching it on first use.
func (s *Sheet) Frame(index int) *ebiten.Image {
	if img, ok := s.frames[index]; ok {
		return img
	}
	col := index % config.SheetCols
	row := index / config.SheetCols
	if row < 0 || row >= config.SheetRows {
		row = 0
		col = 0
	}
	sx := col * s.FrameW
	sy := row * s.FrameH
	rect := image.Rect(sx, sy, sx+s.FrameW, sy+s.FrameH)
	img := s.Image.SubImage(rect).(*ebiten.Image)
	s.frames[index] = img
	return img
}
