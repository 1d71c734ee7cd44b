package uri

import (
	"iter"
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
)

// Queries is an ordered map of decoded query pairs. Keys keep the
// position of their first occurrence; setting a key again replaces its
// value. The zero value is an empty map ready to use.
type Queries struct {
	keys []string
	vals map[string]string
}

// ParseQueries splits a raw query on '&' and '=' and decodes each part
// strictly. It fails if any part is not a valid encoding. A '+' is kept
// as is.
func ParseQueries(raw string) (Queries, bool) {
	q := Queries{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		dk, ok := percent.Decode(k, charset.QueryOrFragmentNotPctEncoded, percent.AllowedChars)
		if !ok {
			return Queries{}, false
		}
		dv, ok := percent.Decode(v, charset.QueryOrFragmentNotPctEncoded, percent.AllowedChars)
		if !ok {
			return Queries{}, false
		}
		q.Set(dk, dv)
	}
	return q, true
}

// ParseQueriesLenient is ParseQueries with WHATWG percent-decoding, which
// never fails.
func ParseQueriesLenient(raw string) Queries {
	q := Queries{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		q.Set(percent.DecodeLenient(k), percent.DecodeLenient(v))
	}
	return q
}

// Len returns the number of keys.
func (q *Queries) Len() int {
	return len(q.keys)
}

// Get returns the value of key.
func (q *Queries) Get(key string) (string, bool) {
	v, ok := q.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (q *Queries) Has(key string) bool {
	_, ok := q.vals[key]
	return ok
}

// Set stores value under key.
func (q *Queries) Set(key, value string) {
	if q.vals == nil {
		q.vals = make(map[string]string)
	}
	if _, ok := q.vals[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.vals[key] = value
}

// Delete removes key. It returns false if key was not present.
func (q *Queries) Delete(key string) bool {
	if _, ok := q.vals[key]; !ok {
		return false
	}
	delete(q.vals, key)
	for i, k := range q.keys {
		if k == key {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in order.
func (q *Queries) Keys() []string {
	return append([]string(nil), q.keys...)
}

// All iterates over the pairs in order.
func (q *Queries) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range q.keys {
			if !yield(k, q.vals[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (q *Queries) Clone() Queries {
	c := Queries{}
	for k, v := range q.All() {
		c.Set(k, v)
	}
	return c
}

// Equal reports whether both maps hold the same pairs in the same order.
func (q *Queries) Equal(o *Queries) bool {
	if q.Len() != o.Len() {
		return false
	}
	for i, k := range q.keys {
		if o.keys[i] != k || o.vals[k] != q.vals[k] {
			return false
		}
	}
	return true
}

// String encodes the pairs as key=value joined by '&'. A pair with an
// empty value is written as its key alone.
func (q *Queries) String() string {
	return string(q.AppendTo(nil))
}

// AppendTo appends the encoded query to b.
func (q *Queries) AppendTo(b []byte) []byte {
	for i, k := range q.keys {
		if i > 0 {
			b = append(b, '&')
		}
		b = percent.AppendEncode(b, k, charset.QueryKey)
		if v := q.vals[k]; v != "" {
			b = append(b, '=')
			b = percent.AppendEncode(b, v, charset.QueryValue)
		}
	}
	return b
}
