package errors

import "errors"

var (
	ERROR_EMBEDDING_MISALIGNED = errors.New("embedding result misaligned with input")
	ERROR_CATALOG_NOT_LOADED   = errors.New("knowledge catalog not loaded")
)

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
