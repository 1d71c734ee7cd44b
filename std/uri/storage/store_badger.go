package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/weburi/weburi/std/log"
)

// Store implementation using badger
type BadgerStore struct {
	db *badger.DB
	tx *badger.Txn
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store %s: %w", path, err)
	}

	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) String() string {
	return "badger-store"
}

func (s *BadgerStore) Close() error {
	if s.tx != nil {
		return ErrInTransaction
	}
	return s.db.Close()
}

func (s *BadgerStore) Get(key []string, prefix bool) (rec *Record, err error) {
	k := encodeKey(key)
	err = s.db.View(func(txn *badger.Txn) error {
		var item *badger.Item

		if !prefix {
			// Exact match
			var err error
			item, err = txn.Get(k)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			} else if err != nil {
				return err
			}
		} else {
			// Prefix match: any byte may follow the prefix, so no seek key
			// is past all of them. Keep the last key under the prefix.
			opts := badger.DefaultIteratorOptions
			opts.PrefetchValues = false // keys only
			opts.Prefix = k
			it := txn.NewIterator(opts)
			defer it.Close()

			var last []byte
			for it.Seek(k); it.ValidForPrefix(k); it.Next() {
				last = it.Item().KeyCopy(last)
			}
			if last == nil {
				return nil
			}

			var err error
			if item, err = txn.Get(last); err != nil {
				return err
			}
		}

		return item.Value(func(val []byte) error {
			r, err := decodeRecord(val)
			if err == nil {
				rec = &r
			}
			return err
		})
	})

	return
}

func (s *BadgerStore) Put(key []string, rec Record) error {
	k, v := encodeKey(key), encodeRecord(rec)
	return s.update(func(txn *badger.Txn) error {
		return txn.Set(k, v)
	})
}

func (s *BadgerStore) Remove(key []string) error {
	k := encodeKey(key)
	return s.update(func(txn *badger.Txn) error {
		return txn.Delete(k)
	})
}

func (s *BadgerStore) RemovePrefix(prefix []string) error {
	keyPfx := encodeKey(prefix)

	return s.update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // keys only
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Seek(keyPfx); it.ValidForPrefix(keyPfx); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Walk(prefix []string, fn func(key []string, rec Record) error) error {
	keyPfx := encodeKey(prefix)

	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(keyPfx); it.ValidForPrefix(keyPfx); it.Next() {
			item := it.Item()
			key, err := decodeKey(item.Key())
			if err != nil {
				return err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			rec, err := decodeRecord(val)
			if err != nil {
				return err
			}
			if err := fn(key, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Begin() (Store, error) {
	if s.tx != nil {
		return nil, ErrInTransaction
	}
	tx := s.db.NewTransaction(true)
	return &BadgerStore{db: s.db, tx: tx}, nil
}

func (s *BadgerStore) Commit() error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	defer func() { s.tx = nil }()
	return s.tx.Commit()
}

func (s *BadgerStore) Rollback() error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	s.tx.Discard()
	s.tx = nil
	return nil
}

func (s *BadgerStore) update(f func(tx *badger.Txn) error) error {
	if s.tx != nil {
		return f(s.tx)
	}
	return s.db.Update(f)
}

// badgerLogger forwards badger's messages to the default logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, v ...any) {
	log.Error(nil, "badger: "+strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (badgerLogger) Warningf(format string, v ...any) {
	log.Warn(nil, "badger: "+strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (badgerLogger) Infof(format string, v ...any) {
	log.Debug(nil, "badger: "+strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (badgerLogger) Debugf(format string, v ...any) {
	log.Trace(nil, "badger: "+strings.TrimSpace(fmt.Sprintf(format, v...)))
}
