package entity

import errs "github.com/gameplants/plants-api/internal/domain/error"

// DeckSlots is the fixed number of plant slots in a deck ("mazo")
const DeckSlots = 3

// Deck holds an account's active plants, one row per account. Unfilled
// slots are nil.
type Deck struct {
	ID       uint64
	UsuariID uint64
	Planta1  *uint64
	Planta2  *uint64
	Planta3  *uint64
}

// DeckPlant is a plant row joined with its deck slot position
type DeckPlant struct {
	Plant
	Orden int
}

// NewDeck builds a deck from an ordered list of 1 to 3 plant ids,
// filling the remaining slots with nil.
func NewDeck(usuariID uint64, plantIDs []uint64) (*Deck, error) {
	if len(plantIDs) == 0 || len(plantIDs) > DeckSlots {
		return nil, errs.ErrInvalidDeck
	}

	deck := &Deck{UsuariID: usuariID}
	slots := []**uint64{&deck.Planta1, &deck.Planta2, &deck.Planta3}
	for i, id := range plantIDs {
		plantID := id
		*slots[i] = &plantID
	}
	return deck, nil
}

// PlantIDs returns the filled slots in order
func (d *Deck) PlantIDs() []uint64 {
	ids := make([]uint64, 0, DeckSlots)
	for _, slot := range []*uint64{d.Planta1, d.Planta2, d.Planta3} {
		if slot != nil {
			ids = append(ids, *slot)
		}
	}
	return ids
}
