// Package storage keeps validation records of URIs, keyed by the
// segments of Structured.Key.
package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Record is the stored outcome of validating one URI.
type Record struct {
	// Serialized URI
	URI string
	// status.Status code
	Code uint32
}

// Store is a sorted map from key segments to records.
type Store interface {
	// Get returns the record at key, or nil if there is none. With prefix
	// set it returns the greatest record under key instead.
	Get(key []string, prefix bool) (*Record, error)
	// Put inserts or replaces the record at key.
	Put(key []string, rec Record) error
	// Remove deletes the record at key.
	Remove(key []string) error
	// RemovePrefix deletes every record under prefix.
	RemovePrefix(prefix []string) error
	// Walk visits every record under prefix in key order.
	Walk(prefix []string, fn func(key []string, rec Record) error) error

	// Begin starts a write transaction. Reads through the parent store
	// do not see its writes until Commit.
	Begin() (Store, error)
	Commit() error
	Rollback() error

	Close() error
}

var (
	ErrNoTransaction = errors.New("storage: not in a transaction")
	ErrInTransaction = errors.New("storage: already in a transaction")
	ErrCorrupt       = errors.New("storage: corrupt entry")
)

// Open creates a store from a backend description: "memory",
// "badger:DIR" or "sqlite:FILE".
func Open(desc string) (Store, error) {
	backend, path, _ := strings.Cut(desc, ":")
	switch backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		if path == "" {
			return nil, fmt.Errorf("badger store needs a directory")
		}
		return NewBadgerStore(path)
	case "sqlite":
		if path == "" {
			return nil, fmt.Errorf("sqlite store needs a file")
		}
		return NewSqliteStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}

// encodeKey joins segments so that the encoding of a prefix is a byte
// prefix of the encoding of every key under it, and byte order matches
// segment order. Each segment is terminated by 0x00; 0x00 and 0x01 inside
// a segment are escaped as 0x01 0x01 and 0x01 0x02.
func encodeKey(key []string) []byte {
	size := 0
	for _, seg := range key {
		size += len(seg) + 1
	}
	b := make([]byte, 0, size)
	for _, seg := range key {
		for i := 0; i < len(seg); i++ {
			switch c := seg[i]; c {
			case 0x00, 0x01:
				b = append(b, 0x01, c+1)
			default:
				b = append(b, c)
			}
		}
		b = append(b, 0x00)
	}
	return b
}

func decodeKey(b []byte) ([]string, error) {
	var key []string
	var seg []byte
	for i := 0; i < len(b); i++ {
		switch c := b[i]; c {
		case 0x00:
			key = append(key, string(seg))
			seg = seg[:0]
		case 0x01:
			i++
			if i == len(b) || b[i] < 1 || b[i] > 2 {
				return nil, ErrCorrupt
			}
			seg = append(seg, b[i]-1)
		default:
			seg = append(seg, c)
		}
	}
	if len(seg) != 0 {
		return nil, ErrCorrupt
	}
	return key, nil
}

func encodeRecord(rec Record) []byte {
	b := make([]byte, 0, 4+len(rec.URI))
	b = binary.BigEndian.AppendUint32(b, rec.Code)
	return append(b, rec.URI...)
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 4 {
		return Record{}, ErrCorrupt
	}
	return Record{
		Code: binary.BigEndian.Uint32(b),
		URI:  string(b[4:]),
	}, nil
}
