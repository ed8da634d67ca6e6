package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeErrorClass groups driver failures by how callers and logs should treat them.
type storeErrorClass string

const (
	storeErrorNone     storeErrorClass = ""
	storeErrorNotFound storeErrorClass = "not_found"
	storeErrorBusy     storeErrorClass = "busy"
	storeErrorNotNull  storeErrorClass = "not_null"
	storeErrorUnique   storeErrorClass = "unique"
	storeErrorOther    storeErrorClass = "other"
)

// classifyStoreError matches on the driver text; the sqlite driver does not export typed constraint errors through gorm.
func classifyStoreError(err error) storeErrorClass {
	if err == nil {
		return storeErrorNone
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storeErrorNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storeErrorUnique
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "database is locked"),
		strings.Contains(errMsg, "database table is locked"),
		strings.Contains(errMsg, "sqlite_busy"):
		return storeErrorBusy
	case strings.Contains(errMsg, "not null constraint failed"):
		return storeErrorNotNull
	case strings.Contains(errMsg, "unique constraint failed"):
		return storeErrorUnique
	default:
		return storeErrorOther
	}
}

// transient reports failures that clear up on retry.
func (c storeErrorClass) transient() bool {
	return c == storeErrorBusy
}

// describeStoreError names the failure for the StorageError details.
func describeStoreError(err error, operation string) string {
	switch classifyStoreError(err) {
	case storeErrorBusy:
		return operation + ": store is busy"
	case storeErrorNotNull:
		return operation + ": missing required activity field"
	case storeErrorUnique:
		return operation + ": duplicate activity"
	default:
		return operation
	}
}
