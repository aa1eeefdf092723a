// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tmap_test

import (
	"testing"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/btcutil/util/tmap"
	"github.com/stretchr/testify/require"
)

func compareInt(a, b *int) int {
	return *a - *b
}

func newTestMap(keys ...int) *tmap.Map[int, string] {
	m := tmap.New[int, string](compareInt)
	for _, k := range keys {
		k := k
		v := string(rune('a' + k))
		tmap.Insert(m, &k, &v)
	}
	return m
}

func TestInsertAndGet(t *testing.T) {
	m := newTestMap(5, 1, 3)
	require.Equal(t, 3, tmap.Len(m))

	k := 3
	gotK, gotV := tmap.GetEntry(m, &k)
	require.NotNil(t, gotK)
	require.Equal(t, 3, *gotK)
	require.Equal(t, "d", *gotV)

	missing := 4
	gotK, gotV = tmap.GetEntry(m, &missing)
	require.Nil(t, gotK)
	require.Nil(t, gotV)

	replacement := "x"
	oldK, oldV := tmap.Insert(m, &k, &replacement)
	require.Equal(t, 3, *oldK)
	require.Equal(t, "d", *oldV)
	require.Equal(t, 3, tmap.Len(m))
}

func TestOrderedIteration(t *testing.T) {
	m := newTestMap(9, 2, 7, 4)

	var forward []int
	require.Nil(t, tmap.ForEach(m, func(k *int, _ *string) er.R {
		forward = append(forward, *k)
		return nil
	}))
	require.Equal(t, []int{2, 4, 7, 9}, forward)

	var backward []int
	require.Nil(t, tmap.ForEachReverse(m, func(k *int, _ *string) er.R {
		backward = append(backward, *k)
		if *k == 4 {
			return er.LoopBreak.Default()
		}
		return nil
	}))
	require.Equal(t, []int{9, 7, 4}, backward)

	boom := er.New("boom")
	err := tmap.ForEach(m, func(_ *int, _ *string) er.R { return boom })
	require.Equal(t, boom, err)
}

func TestLast(t *testing.T) {
	empty := tmap.New[int, string](compareInt)
	k, v := tmap.Last(empty)
	require.Nil(t, k)
	require.Nil(t, v)

	k, _ = tmap.Last(newTestMap(3, 11, 6))
	require.Equal(t, 11, *k)
}
