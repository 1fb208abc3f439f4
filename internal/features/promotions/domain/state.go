package domain

import "time"

// CacheEntry is one persisted snapshot of the active promotions.
// Payload and timestamp are stored together as a single record.
type CacheEntry struct {
	Payload  PromotionSet `json:"payload"`
	StoredAt time.Time    `json:"stored_at"`
}

// IsValid reports whether the entry is younger than window at now.
func (e CacheEntry) IsValid(now time.Time, window time.Duration) bool {
	if e.StoredAt.IsZero() {
		return false
	}
	return now.Sub(e.StoredAt) < window
}

// DisplayState is the rotating view over the active promotions.
// When Items is non-empty, 0 <= CurrentIndex < len(Items).
type DisplayState struct {
	Items        PromotionSet `json:"items"`
	CurrentIndex int          `json:"current_index"`
}

// Current returns the promotion at CurrentIndex, or false when there is none.
func (s DisplayState) Current() (Promotion, bool) {
	if len(s.Items) == 0 {
		return Promotion{}, false
	}
	return s.Items[s.CurrentIndex], true
}

// Replace swaps in a new set wholesale and rewraps the index against its length.
func (s *DisplayState) Replace(items PromotionSet) {
	s.Items = items
	if len(items) == 0 {
		s.CurrentIndex = 0
		return
	}
	s.CurrentIndex = ((s.CurrentIndex % len(items)) + len(items)) % len(items)
}

// Advance moves to the next promotion cyclically.
// It returns false, leaving the state untouched, when there are fewer than two items.
func (s *DisplayState) Advance() bool {
	if len(s.Items) <= 1 {
		return false
	}
	s.CurrentIndex = (s.CurrentIndex + 1) % len(s.Items)
	return true
}

// Clone returns a copy that shares no slice with s.
func (s DisplayState) Clone() DisplayState {
	items := make(PromotionSet, len(s.Items))
	copy(items, s.Items)
	return DisplayState{Items: items, CurrentIndex: s.CurrentIndex}
}
