package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"record not found", gorm.ErrRecordNotFound, NotFoundError},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"postgres serialization failure", &pgconn.PgError{Code: "40001"}, ConflictError},
		{"postgres deadlock", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}), ConflictError},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, DuplicateKeyError},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ConflictError},
		{"database is locked text", errors.New("database is locked"), ConflictError},
		{"connection refused", errors.New("dial tcp: connection refused"), ConnectionError},
		{"deadline", context.DeadlineExceeded, ConnectionError},
		{"not null", errors.New("NOT NULL constraint failed: users.tg_id"), ConstraintError},
		{"unknown", errors.New("syntax error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_MapError(t *testing.T) {
	c := NewErrorClassifier()
	mapUser := func(err error) error { return c.MapError(err, errs.ErrUserNotFound, errs.ErrDuplicateUser) }

	assert.NoError(t, mapUser(nil))
	assert.ErrorIs(t, c.MapError(gorm.ErrRecordNotFound, errs.ErrKeyNotFound, errs.ErrDuplicateKey), errs.ErrKeyNotFound)
	assert.ErrorIs(t, mapUser(gorm.ErrDuplicatedKey), errs.ErrDuplicateUser)
	assert.ErrorIs(t, mapUser(&pgconn.PgError{Code: "40001"}), errs.ErrWriteConflict)
	assert.ErrorIs(t, mapUser(errors.New("connection reset by peer")), errs.ErrStorageUnavailable)
	assert.ErrorIs(t, mapUser(errors.New("no such table: users")), errs.ErrStorageUnavailable)
}

func TestErrorClassifier_MapErrorDuplicateFollowsTable(t *testing.T) {
	c := NewErrorClassifier()
	violation := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}

	keyErr := c.MapError(violation, errs.ErrKeyNotFound, errs.ErrDuplicateKey)
	assert.ErrorIs(t, keyErr, errs.ErrDuplicateKey)
	assert.NotErrorIs(t, keyErr, errs.ErrDuplicateUser)
	assert.Equal(t, errs.CodeDuplicateKey, errs.ErrorCode(keyErr))

	userErr := c.MapError(violation, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	assert.ErrorIs(t, userErr, errs.ErrDuplicateUser)
}
