package store

import "errors"

var (
	ErrNoSnapshot = errors.New("no cached snapshot for account")
)
