package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"time", "time"},
		{"html/template", "template"},
		{"math/rand/v2", "rand"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/pelletier/go-toml", "go-toml"},
		{"example.com/v2", "example.com"},
		{"example.com/lib/vendor", "vendor"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.path))
		})
	}
}

func TestSlicePredicates(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))
}
