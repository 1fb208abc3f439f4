package domain

import (
	"strings"
	"time"
)

// BannerState mirrors the container state of the banner: loading, ready or error.
type BannerState string

const (
	BannerStateLoading BannerState = "loading"
	BannerStateReady   BannerState = "ready"
	BannerStateError   BannerState = "error"
)

// Slide is the content a renderer puts on screen.
type Slide struct {
	PromotionID PromotionID `json:"promotion_id,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	// ImageURL is empty when no background image should be shown.
	ImageURL string `json:"image_url,omitempty"`
	// Fallback is true for the degraded "no promotions" content.
	Fallback bool `json:"fallback"`
}

// NewSlide builds the slide for p, resolving its image against imageBaseURL.
func NewSlide(p Promotion, imageBaseURL string) Slide {
	s := Slide{
		PromotionID: p.ID,
		Title:       p.Title,
		Description: p.DisplayDescription(),
	}
	if p.HasImage() {
		s.ImageURL = ImageURL(imageBaseURL, p.Image)
	}
	return s
}

// FallbackSlide is the content shown when there is nothing to rotate.
func FallbackSlide() Slide {
	return Slide{
		Description: DefaultDescription,
		Fallback:    true,
	}
}

// ImageURL joins base and image with exactly one slash.
func ImageURL(base, image string) string {
	image = strings.TrimLeft(strings.TrimSpace(image), "/")
	if base == "" {
		return image
	}
	return strings.TrimRight(base, "/") + "/" + image
}

// Frame is what is currently visible on a display.
type Frame struct {
	Slide         Slide       `json:"slide"`
	State         BannerState `json:"state"`
	Transitioning bool        `json:"transitioning"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
