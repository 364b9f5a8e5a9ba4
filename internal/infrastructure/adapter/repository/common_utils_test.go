package repository

import (
	"errors"
	"fmt"
	"testing"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			"deadlock maps to transaction conflict",
			errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"),
			errs.ErrTransactionConflict,
		},
		{
			"serialization failure maps to transaction conflict",
			errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"),
			errs.ErrTransactionConflict,
		},
		{
			"check violation maps to constraint violation",
			errors.New(`ERROR: new row for relation "plantas" violates check constraint "chk_nivell" (SQLSTATE 23514)`),
			errs.ErrConstraintViolation,
		},
		{
			"foreign key violation maps to constraint violation",
			errors.New(`ERROR: insert or update on table "iusuari" violates foreign key constraint "fk_usuari" (SQLSTATE 23503)`),
			errs.ErrConstraintViolation,
		},
		{
			"duplicate key maps to constraint violation",
			errors.New(`ERROR: duplicate key value violates unique constraint "idx_iusuari_pair_unique" (SQLSTATE 23505)`),
			errs.ErrConstraintViolation,
		},
		{
			"balance check maps to insufficient balance",
			errors.New(`ERROR: new row for relation "usuaris" violates check constraint "chk_usuaris_btc_nonnegative" (SQLSTATE 23514)`),
			errs.ErrInsufficientBalance,
		},
		{
			"anything else maps to database connection",
			errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			errs.ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.sentinel)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("message is preserved for diagnostics", func(t *testing.T) {
		err := translateError(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"))
		assert.Contains(t, err.Error(), "deadlock detected")
	})
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(errors.New(`duplicate key value violates unique constraint "idx_usuaris_correu"`)))
	assert.True(t, isDuplicateKey(fmt.Errorf("insert failed: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(errors.New("connection reset by peer")))
}

func TestIsLockContention(t *testing.T) {
	assert.True(t, isLockContention(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.True(t, isLockContention(errors.New("canceling statement due to lock timeout")))
	assert.False(t, isLockContention(nil))
	assert.False(t, isLockContention(errors.New("record not found")))
}
