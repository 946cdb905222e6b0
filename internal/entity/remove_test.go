package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveIndicesPreservesOrder(t *testing.T) {
	base := []string{"a", "b", "c", "d", "e", "f"}
	cases := []struct {
		name    string
		indices []int
		want    []string
	}{
		{"none", nil, []string{"a", "b", "c", "d", "e", "f"}},
		{"first", []int{0}, []string{"b", "c", "d", "e", "f"}},
		{"last", []int{5}, []string{"a", "b", "c", "d", "e"}},
		{"scattered", []int{1, 3, 4}, []string{"a", "c", "f"}},
		{"all", []int{0, 1, 2, 3, 4, 5}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := append([]string(nil), base...)
			got := RemoveIndices(items, tc.indices)
			assert.Equal(t, tc.want, append([]string{}, got...))
		})
	}
}

func TestRemoveIndicesEverySubset(t *testing.T) {
	const n = 7
	for mask := 0; mask < 1<<n; mask++ {
		items := make([]int, n)
		var indices, want []int
		for i := 0; i < n; i++ {
			items[i] = i * 10
			if mask&(1<<i) != 0 {
				indices = append(indices, i)
			} else {
				want = append(want, i*10)
			}
		}
		got := RemoveIndices(items, indices)
		assert.Equal(t, len(want), len(got))
		for i := range want {
			assert.Equal(t, want[i], got[i])
		}
	}
}

func TestRemoveIndicesClearsTail(t *testing.T) {
	a, b, c := &Entity{}, &Entity{}, &Entity{}
	items := []*Entity{a, b, c}
	got := RemoveIndices(items, []int{0})
	assert.Equal(t, []*Entity{b, c}, got)
	assert.Nil(t, items[2])
}
