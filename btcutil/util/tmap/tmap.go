// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tmap

import (
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Map is a tree-backed map, it is placed in order and uses a custom comparitor to
// compare map keys. This allows you to:
// 1. Decide what constitutes equality
// 2. Use any key type that you like
// 3. Place the entries in a logical order and iterate over them in that order,
// forwards or backwards
type Map[K, V any] struct {
	tm   *redblacktree.Tree
	comp func(a, b *K) int
}

// New creates a new tmap with the given comparitor function, the comparitor is used to
// identify duplicate keys and to order the map for the purpose of iteration.
func New[K, V any](comp func(a, b *K) int) *Map[K, V] {
	return &Map[K, V]{
		tm: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return comp(a.(*K), b.(*K))
		}),
		comp: comp,
	}
}

func visit[K, V any](it interface {
	Key() interface{}
	Value() interface{}
}, f func(k *K, v *V) er.R) er.R {
	return f(it.Key().(*K), it.Value().(*V))
}

func stop(err er.R) er.R {
	if er.IsLoopBreak(err) {
		return nil
	}
	return err
}

// ForEach iterates over the entries in ascending order and calls f with each
// key/value pair. If f returns an error the iteration stops and the error is
// returned, unless it is er.LoopBreak in which case nil is returned.
func ForEach[K, V any](s *Map[K, V], f func(k *K, v *V) er.R) er.R {
	it := s.tm.Iterator()
	for it.Next() {
		if err := visit(&it, f); err != nil {
			return stop(err)
		}
	}
	return nil
}

// ForEachReverse is ForEach in descending order.
func ForEachReverse[K, V any](s *Map[K, V], f func(k *K, v *V) er.R) er.R {
	it := s.tm.Iterator()
	it.End()
	for it.Prev() {
		if err := visit(&it, f); err != nil {
			return stop(err)
		}
	}
	return nil
}

// Insert adds a new key/value to the tmap. If it happens that there is an old
// entry which has the a matching key, the old entry key and value are returned.
func Insert[K, V any](s *Map[K, V], k *K, v *V) (*K, *V) {
	oldK, oldV := GetEntry(s, k)
	s.tm.Put(k, v)
	return oldK, oldV
}

// GetEntry provides a key and value of an entry, based on an example of the key
// the returned key is a pointer to the actual key, while the input key k is
// something which is considered by the comparitor to match the key.
func GetEntry[K, V any](s *Map[K, V], k *K) (*K, *V) {
	if n, ok := s.tm.Ceiling(k); ok && s.comp(k, n.Key.(*K)) == 0 {
		return n.Key.(*K), n.Value.(*V)
	}
	return nil, nil
}

// Last returns the greatest entry in the map, nil if the map is empty.
func Last[K, V any](s *Map[K, V]) (*K, *V) {
	n := s.tm.Right()
	if n == nil {
		return nil, nil
	}
	return n.Key.(*K), n.Value.(*V)
}

// Len gives the size of the tmap, number of entries
func Len[K, V any](s *Map[K, V]) int {
	return s.tm.Size()
}
