package evaluator_test

import (
	"testing"

	"github.com/goto/folio/pkg/evaluator"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateWithVars(t *testing.T) {
	testCases := []struct {
		name        string
		expression  evaluator.Expression
		params      map[string]interface{}
		expected    interface{}
		expectError bool
	}{
		{
			name:       "arithmetic over variables",
			expression: "qty * price",
			params:     map[string]interface{}{"qty": 3, "price": 2.5},
			expected:   7.5,
		},
		{
			name:       "boolean comparison",
			expression: "total > 100",
			params:     map[string]interface{}{"total": 150},
			expected:   true,
		},
		{
			name:       "string concatenation",
			expression: `name + "-" + code`,
			params:     map[string]interface{}{"name": "Widget", "code": "W"},
			expected:   "Widget-W",
		},
		{
			name:       "nil params",
			expression: "1 + 2",
			expected:   3,
		},
		{
			name:        "syntax error",
			expression:  "1 +",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.expression.EvaluateWithVars(tc.params)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
