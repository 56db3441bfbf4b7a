package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrTechnologyNotFound = errors.New("technology not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSlugConflict       = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// StorageError wraps a database failure that is not part of the domain
// taxonomy. Op names the failed operation, e.g. "create post".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr classifies err. Unique violations become ErrSlugConflict since
// slugs are the only unique columns the services write.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugConflict
	}
	return &StorageError{Op: op, Err: err}
}

// notFound maps gorm.ErrRecordNotFound to sentinel and wraps everything else.
func notFound(op string, err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return storageErr(op, err)
}
