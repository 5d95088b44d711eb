package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func SortDedup[A constraints.Ordered](items []A) []A {
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	var res []A
	for i, v := range items {
		if i == 0 || v != res[len(res)-1] {
			res = append(res, v)
		}
	}
	return res
}
