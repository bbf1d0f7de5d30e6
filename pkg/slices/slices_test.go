package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/folio/pkg/slices"
)

func TestFilterEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, slices.FilterEmpty([]string{"", "a", "", "b"}))
	assert.Equal(t, []int64{}, slices.FilterEmpty([]int64{0, 0}))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, slices.Unique([]string{"b", "a", "b", "a"}))
	assert.Equal(t, []int{}, slices.Unique[int](nil))
}

func TestStandardize(t *testing.T) {
	testCases := []struct {
		name     string
		input    []int64
		expected []int64
	}{
		{
			name:     "nil",
			input:    nil,
			expected: []int64{},
		},
		{
			name:     "sorted distinct non-zero values",
			input:    []int64{12, 0, 11, 12, 50000},
			expected: []int64{11, 12, 50000},
		},
		{
			name:     "only zero",
			input:    []int64{0},
			expected: []int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slices.Standardize(tc.input))
		})
	}
}
