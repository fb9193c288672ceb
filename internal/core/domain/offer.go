package domain

import (
	"fmt"
	"maps"
)

// Offer is promoted content referenced by an autopilot. ExternalID is the
// opaque record id used by the offer store.
type Offer struct {
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Goal       string `json:"goal"`
}

// OfferMapping is an immutable bidirectional table between external offer
// ids and the compact numeric ids persisted on autopilot records.
type OfferMapping struct {
	toNumeric  map[string]int64
	toExternal map[int64]string
}

// NewOfferMapping builds a mapping from external id to numeric id. Every
// numeric id must appear at most once and be positive.
func NewOfferMapping(pairs map[string]int64) (*OfferMapping, error) {
	m := &OfferMapping{
		toNumeric:  make(map[string]int64, len(pairs)),
		toExternal: make(map[int64]string, len(pairs)),
	}
	for ext, num := range pairs {
		if ext == "" || num <= 0 {
			return nil, fmt.Errorf("offer mapping %q:%d: %w", ext, num, ErrInvalidRequest)
		}
		if prev, dup := m.toExternal[num]; dup {
			return nil, fmt.Errorf("offer mapping: numeric id %d used by %q and %q: %w", num, prev, ext, ErrInvalidRequest)
		}
		m.toNumeric[ext] = num
		m.toExternal[num] = ext
	}
	return m, nil
}

// ToNumeric returns the numeric id for externalID or ErrNotFound.
func (m *OfferMapping) ToNumeric(externalID string) (int64, error) {
	num, ok := m.toNumeric[externalID]
	if !ok {
		return 0, fmt.Errorf("offer %q: %w", externalID, ErrNotFound)
	}
	return num, nil
}

// ToExternal returns the external id for numericID or ErrNotFound.
func (m *OfferMapping) ToExternal(numericID int64) (string, error) {
	ext, ok := m.toExternal[numericID]
	if !ok {
		return "", fmt.Errorf("offer #%d: %w", numericID, ErrNotFound)
	}
	return ext, nil
}

// Pairs returns a copy of the table keyed by external id.
func (m *OfferMapping) Pairs() map[string]int64 {
	return maps.Clone(m.toNumeric)
}
