package database

import (
	"fmt"

	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors raised outside a repository, such as
// begin and commit failures, to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error, keeping the operation in the message
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError, repository.ConflictError:
		return fmt.Errorf("%w: %s: %v", errs.ErrWriteConflict, operation, err)
	default:
		return fmt.Errorf("%w: %s: %v", errs.ErrStorageUnavailable, operation, err)
	}
}
