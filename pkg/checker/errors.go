package checker

import "errors"

var (
	ErrPostgresQueryFailed = errors.New("postgres existence query failed")
	ErrRedisQueryFailed    = errors.New("redis existence query failed")
	ErrMongoQueryFailed    = errors.New("mongo existence query failed")
	ErrRequestFailed       = errors.New("existence endpoint request failed")
	ErrUnexpectedStatus    = errors.New("existence endpoint returned an unexpected status")
)
