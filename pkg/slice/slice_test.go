// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "4"}, slice.Map([]int{1, 2, 4}, strconv.Itoa))
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	positive := func(id int) bool { return id > 0 }

	assert.Equal(t, []int{3, 9}, slice.Filter([]int{-1, 3, 0, 9}, positive))
	assert.Nil(t, slice.Filter([]int{0, -2}, positive))
	assert.Nil(t, slice.Filter(nil, positive))
}
