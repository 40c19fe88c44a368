package messages

import "errors"

var (
	ErrEmptyCatalog       = errors.New("message catalog is empty")
	ErrUnsupportedFormat  = errors.New("unsupported message catalog format")
	ErrInvalidMessage     = errors.New("message must be a string")
	ErrParsingCancelled   = errors.New("message catalog parsing cancelled")
	ErrFailedToParse      = errors.New("failed to parse message catalog")
	ErrLoadingCancelled   = errors.New("loading message catalog cancelled")
	ErrFailedToReadFile   = errors.New("failed to read message catalog file")
	ErrFailedToReadRedis  = errors.New("failed to read message catalog from redis")
	ErrFailedToWriteRedis = errors.New("failed to write message catalog to redis")
	ErrNilRedisClient     = errors.New("redis client cannot be nil")
)
