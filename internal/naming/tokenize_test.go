package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"XMLIsNotCool", []string{"XML", "Is", "Not", "Cool"}},
		{"Rust_IsCoolThough", []string{"Rust", "Is", "Cool", "Though"}},
		{"YMCA", []string{"YMCA"}},
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_id", []string{"order", "id"}},
		{"__leading", []string{"leading"}},
		{"Http2Server", []string{"Http2", "Server"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestLowerTokens(t *testing.T) {
	assert.Equal(t, []string{"xml", "is", "not", "cool"}, LowerTokens("XMLIsNotCool"))
	assert.Equal(t, []string{"rust", "is", "cool", "though"}, LowerTokens("Rust_IsCoolThough"))
}
