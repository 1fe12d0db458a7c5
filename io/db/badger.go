// Package db provides the BadgerDB-backed repository used for durable
// key/value state: the processed-message replay guard and the fee
// ledger.
package db

import (
	stdErrors "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// ErrNotFound returned when key does not exist in the repository.
var ErrNotFound = errors.New("key not found")

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks . Repository
type Repository interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	Close() error
}

type BadgerDB struct {
	db *badger.DB
}

func New(path string) (*BadgerDB, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "open badger db")
	}
	return &BadgerDB{db}, nil
}

func (b *BadgerDB) Put(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerDB) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if stdErrors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

func (b *BadgerDB) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(key)); err != nil && !stdErrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return nil
	})
}

func (b *BadgerDB) Close() error {
	return b.db.Close()
}
