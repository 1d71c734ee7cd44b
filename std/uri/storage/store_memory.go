package storage

import (
	"maps"
	"slices"
	"sync"
)

type MemoryStore struct {
	// root of the store
	root *memoryStoreNode
	// thread safety
	mutex sync.RWMutex

	// parent of a transaction
	parent *MemoryStore
	// pending writes of a transaction
	ops []func(*memoryStoreNode)
	// transaction mutex
	txMutex sync.Mutex
}

type memoryStoreNode struct {
	// children by key segment
	children map[string]*memoryStoreNode
	// stored record
	rec *Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		root: &memoryStoreNode{},
	}
}

func (s *MemoryStore) Get(key []string, prefix bool) (*Record, error) {
	if s.parent != nil {
		return s.parent.Get(key, prefix)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	node := s.root.find(key)
	if node == nil {
		return nil, nil
	}
	if prefix {
		node = node.findLast()
	}
	if node == nil || node.rec == nil {
		return nil, nil
	}
	rec := *node.rec
	return &rec, nil
}

func (s *MemoryStore) Put(key []string, rec Record) error {
	key = slices.Clone(key)
	return s.apply(func(root *memoryStoreNode) { root.insert(key, &rec) })
}

func (s *MemoryStore) Remove(key []string) error {
	key = slices.Clone(key)
	return s.apply(func(root *memoryStoreNode) { root.remove(key, false) })
}

func (s *MemoryStore) RemovePrefix(prefix []string) error {
	prefix = slices.Clone(prefix)
	return s.apply(func(root *memoryStoreNode) { root.remove(prefix, true) })
}

func (s *MemoryStore) Walk(prefix []string, fn func(key []string, rec Record) error) error {
	if s.parent != nil {
		return s.parent.Walk(prefix, fn)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	node := s.root.find(prefix)
	if node == nil {
		return nil
	}
	return node.walk(slices.Clone(prefix), fn)
}

func (s *MemoryStore) Begin() (Store, error) {
	if s.parent != nil {
		return nil, ErrInTransaction
	}
	s.txMutex.Lock()
	return &MemoryStore{parent: s}, nil
}

func (s *MemoryStore) Commit() error {
	if s.parent == nil {
		return ErrNoTransaction
	}
	p := s.parent
	defer p.txMutex.Unlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()
	for _, op := range s.ops {
		op(p.root)
	}
	s.ops, s.parent = nil, nil
	return nil
}

func (s *MemoryStore) Rollback() error {
	if s.parent == nil {
		return ErrNoTransaction
	}
	s.parent.txMutex.Unlock()
	s.ops, s.parent = nil, nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	size := 0
	s.root.each(func(n *memoryStoreNode) {
		if n.rec != nil {
			size++
		}
	})
	return size
}

func (s *MemoryStore) apply(op func(*memoryStoreNode)) error {
	if s.parent != nil {
		s.ops = append(s.ops, op)
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	op(s.root)
	return nil
}

func (n *memoryStoreNode) find(key []string) *memoryStoreNode {
	if len(key) == 0 {
		return n
	}
	if child := n.children[key[0]]; child != nil {
		return child.find(key[1:])
	}
	return nil
}

// findLast returns the node holding the greatest record in the subtree.
func (n *memoryStoreNode) findLast() *memoryStoreNode {
	if len(n.children) > 0 {
		keys := slices.Sorted(maps.Keys(n.children))
		for i := len(keys) - 1; i >= 0; i-- {
			if last := n.children[keys[i]].findLast(); last != nil {
				return last
			}
		}
	}
	if n.rec != nil {
		return n
	}
	return nil
}

func (n *memoryStoreNode) insert(key []string, rec *Record) {
	if len(key) == 0 {
		n.rec = rec
		return
	}

	if n.children == nil {
		n.children = make(map[string]*memoryStoreNode)
	}

	child := n.children[key[0]]
	if child == nil {
		child = &memoryStoreNode{}
		n.children[key[0]] = child
	}
	child.insert(key[1:], rec)
}

func (n *memoryStoreNode) remove(key []string, prefix bool) bool {
	// return value is if the parent should prune this child
	if len(key) == 0 {
		n.rec = nil
		if prefix {
			n.children = nil // prune subtree
		}
		return len(n.children) == 0
	}

	if child := n.children[key[0]]; child != nil {
		if child.remove(key[1:], prefix) {
			delete(n.children, key[0])
		}
	}

	return n.rec == nil && len(n.children) == 0
}

func (n *memoryStoreNode) walk(key []string, fn func([]string, Record) error) error {
	if n.rec != nil {
		if err := fn(slices.Clone(key), *n.rec); err != nil {
			return err
		}
	}
	for _, seg := range slices.Sorted(maps.Keys(n.children)) {
		if err := n.children[seg].walk(append(key, seg), fn); err != nil {
			return err
		}
	}
	return nil
}

func (n *memoryStoreNode) each(f func(*memoryStoreNode)) {
	f(n)
	for _, child := range n.children {
		child.each(f)
	}
}
