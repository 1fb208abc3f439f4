package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// DefaultDescription is shown when a promotion has no description and as the fallback banner text.
	DefaultDescription = "Ofertas Especiais 🔥"
	// PlaceholderImage is the value the backend uses for "no image uploaded".
	PlaceholderImage = "string"
)

// PromotionID is an opaque identifier. The backend sends numbers; strings are accepted too.
type PromotionID string

// UnmarshalJSON accepts a JSON number, string or null.
func (id *PromotionID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = PromotionID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("promotion id must be a number or string: %w", err)
		}
		*id = PromotionID(n.String())
	}
	return nil
}

// Promotion represents one promotional offer as published by the backend.
type Promotion struct {
	// ID identifies the promotion; uniqueness is trusted to the source.
	ID PromotionID `json:"id"`
	// Title is the optional headline.
	Title string `json:"title,omitempty"`
	// Description is the body text; empty means DefaultDescription.
	Description string `json:"description,omitempty"`
	// Image is the image file name on the image server.
	Image string `json:"image,omitempty"`
	// Active marks the promotion as eligible for rotation.
	Active bool `json:"active"`
	// StartDate is the first day of the offer (YYYY-MM-DD), informational only.
	StartDate string `json:"start_date,omitempty"`
	// EndDate is the last day of the offer (YYYY-MM-DD), informational only.
	EndDate string `json:"end_date,omitempty"`
	// DiscountValue is the discount applied by the offer.
	DiscountValue float64 `json:"discount_value,omitempty"`
	// IsQuantityDiscount marks quantity based discounts.
	IsQuantityDiscount bool `json:"is_quantity_discount,omitempty"`
	// Price is the promotional price.
	Price float64 `json:"price,omitempty"`
	// Items lists the menu item IDs covered by the offer.
	Items []int `json:"items,omitempty"`
}

// HasImage reports whether Image refers to a real resource.
func (p Promotion) HasImage() bool {
	img := strings.TrimSpace(p.Image)
	return img != "" && img != PlaceholderImage
}

// DisplayDescription returns the description or the default text.
func (p Promotion) DisplayDescription() string {
	if p.Description == "" {
		return DefaultDescription
	}
	return p.Description
}

// PromotionSet is an ordered list of active promotions. Order defines rotation order.
type PromotionSet []Promotion

// FilterActive keeps the active promotions of raw in source order.
// The result is never nil.
func FilterActive(raw []Promotion) PromotionSet {
	out := make(PromotionSet, 0, len(raw))
	for _, p := range raw {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}
