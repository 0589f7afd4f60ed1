package repr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dereks/derex"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := New()
	fmtr := func(raw []byte) (string, error) { return "ok", nil }
	r.Register(derex.ClassApplication, 5, "recordType", fmtr)

	name, ok := r.NameOf(derex.ClassApplication, 5)
	require.True(t, ok)
	assert.Equal(t, "recordType", name)

	f, ok := r.FormatterOf(derex.ClassApplication, 5)
	require.True(t, ok)
	text, err := f(nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	_, ok = r.NameOf(derex.ClassApplication, 6)
	assert.False(t, ok)
}

func TestNewDefaultHasUniversalNames(t *testing.T) {
	r := NewDefault()
	name, ok := r.NameOf(derex.ClassUniversal, 2)
	require.True(t, ok)
	assert.Equal(t, "INTEGER", name)

	_, ok = r.FormatterOf(derex.ClassUniversal, 2)
	assert.True(t, ok, "INTEGER should have a default formatter")

	_, ok = r.FormatterOf(derex.ClassUniversal, 16)
	assert.False(t, ok, "SEQUENCE has no natural default formatter")
}

func TestLoadConfig(t *testing.T) {
	yamlDoc := `
entries:
  - tag: u2
    name: customInteger
    formatter: integer
  - tag: a5
    name: recordType
`
	r := New()
	err := LoadConfig(r, strings.NewReader(yamlDoc))
	require.NoError(t, err)

	name, ok := r.NameOf(derex.ClassUniversal, 2)
	require.True(t, ok)
	assert.Equal(t, "customInteger", name)

	f, ok := r.FormatterOf(derex.ClassUniversal, 2)
	require.True(t, ok)
	text, err := f([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "1", text)

	name, ok = r.NameOf(derex.ClassApplication, 5)
	require.True(t, ok)
	assert.Equal(t, "recordType", name)
	_, ok = r.FormatterOf(derex.ClassApplication, 5)
	assert.False(t, ok)
}

func TestLoadConfigUnknownFormatter(t *testing.T) {
	yamlDoc := `
entries:
  - tag: u99
    name: mystery
    formatter: doesNotExist
`
	r := New()
	err := LoadConfig(r, strings.NewReader(yamlDoc))
	assert.Error(t, err)
}

func TestLoadConfigMalformedTag(t *testing.T) {
	yamlDoc := `
entries:
  - tag: zz
    name: bad
`
	r := New()
	err := LoadConfig(r, strings.NewReader(yamlDoc))
	assert.Error(t, err)
}
