// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
package media

import "fmt"

// UnknownDimension marks an image height or width that is not known.
const UnknownDimension = -1

// ResolutionLevel is a coarse size class of an Image.
type ResolutionLevel int

const (
	LevelUnknown ResolutionLevel = iota
	LevelLow
	LevelMedium
	LevelHigh
)

func (l ResolutionLevel) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

func (l ResolutionLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LevelFromHeight classifies a pixel height. Heights <= 0 are unknown.
func LevelFromHeight(height int) ResolutionLevel {
	switch {
	case height <= 0:
		return LevelUnknown
	case height < 175:
		return LevelLow
	case height < 720:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Image is one candidate picture of a logical asset.
// Several images with different sizes may describe the same asset.
type Image struct {
	URL    string          `json:"url"`
	Height int             `json:"height"`
	Width  int             `json:"width"`
	Level  ResolutionLevel `json:"resolution_level"`
}

// NewImage derives the resolution level from the height.
func NewImage(url string, height, width int) Image {
	return Image{
		URL:    url,
		Height: height,
		Width:  width,
		Level:  LevelFromHeight(height),
	}
}

// NewSquareImage is used for avatars, where only one side is reported.
func NewSquareImage(url string, side int) Image {
	return Image{
		URL:    url,
		Height: UnknownDimension,
		Width:  side,
		Level:  LevelFromHeight(side),
	}
}

// Validate reports an image without a url.
func (i Image) Validate() error {
	if i.URL == "" {
		return fmt.Errorf("image without url (height %d, width %d)", i.Height, i.Width)
	}
	return nil
}

// Largest returns the image with the highest level, keeping input order on ties.
func Largest(images []Image) (Image, bool) {
	if len(images) == 0 {
		return Image{}, false
	}

	best := images[0]
	for _, img := range images[1:] {
		if img.Level > best.Level {
			best = img
		}
	}
	return best, true
}
