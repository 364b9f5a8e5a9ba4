package entity

import (
	"testing"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Run("one plant fills the first slot", func(t *testing.T) {
		deck, err := NewDeck(42, []uint64{7})

		require.NoError(t, err)
		require.NotNil(t, deck.Planta1)
		assert.Equal(t, uint64(7), *deck.Planta1)
		assert.Nil(t, deck.Planta2)
		assert.Nil(t, deck.Planta3)
	})

	t.Run("three plants fill the slots in order", func(t *testing.T) {
		deck, err := NewDeck(42, []uint64{7, 8, 9})

		require.NoError(t, err)
		assert.Equal(t, []uint64{7, 8, 9}, deck.PlantIDs())
	})

	t.Run("empty list is rejected", func(t *testing.T) {
		_, err := NewDeck(42, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidDeck)
	})

	t.Run("more than three plants are rejected", func(t *testing.T) {
		_, err := NewDeck(42, []uint64{1, 2, 3, 4})

		assert.ErrorIs(t, err, errs.ErrInvalidDeck)
	})
}

func TestPlantIDs(t *testing.T) {
	t.Run("skips unfilled slots", func(t *testing.T) {
		seven := uint64(7)
		deck := &Deck{UsuariID: 42, Planta1: &seven}

		assert.Equal(t, []uint64{7}, deck.PlantIDs())
	})

	t.Run("empty deck yields no ids", func(t *testing.T) {
		deck := &Deck{UsuariID: 42}

		assert.Empty(t, deck.PlantIDs())
	})
}
