package storage

import (
	"context"
	"errors"
)

// LocalStorage - локальное хранилище строк по ключу
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key string, value string) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

var (
	ErrNotFound = errors.New("not found")
)
