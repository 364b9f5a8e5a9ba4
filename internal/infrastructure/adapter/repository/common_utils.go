package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	"gorm.io/gorm"
)

// translateError maps a raw GORM/driver error onto the domain taxonomy.
// Missing-row cases are handled at the call sites, which know which
// table's sentinel applies; everything else funnels through here.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case strings.Contains(err.Error(), "chk_usuaris_btc_nonnegative"):
		// The balance check constraint is the last line behind the
		// conditional UPDATE in AdjustBalance.
		return errs.ErrInsufficientBalance
	case isLockContention(err):
		return fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	case isConstraintViolation(err):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// isDuplicateKey reports a unique-index violation. The account email and
// the (usuari_id, item_id) inventory pair are the unique indexes beyond
// primary keys.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "23505")
}

// isLockContention reports deadlocks and serialization failures, the
// conflicts a concurrent purchase against the same rows can produce.
func isLockContention(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40P01")
}

// isConstraintViolation reports check, foreign key, not-null and unique
// violations.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return isDuplicateKey(err) ||
		strings.Contains(msg, "violates check constraint") ||
		strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "violates not-null constraint")
}
