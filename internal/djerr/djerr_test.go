package djerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOErrorFormatsKindAndMessage(t *testing.T) {
	err := IOError("write %q: %v", "out.txt", "disk full")
	assert.Equal(t, IOErrorKind, err.Kind)
	assert.Equal(t, `IOError: write "out.txt": disk full`, err.Error())
}

func TestRuntimeTypeErrorFormatsKindAndMessage(t *testing.T) {
	err := RuntimeTypeError("expected %s, got %s", "Transformer", "Filter")
	assert.Equal(t, RuntimeTypeErrorKind, err.Kind)
	assert.Equal(t, "RuntimeTypeError: expected Transformer, got Filter", err.Error())
}

func TestConfigErrorFormatsKindAndMessage(t *testing.T) {
	err := ConfigError("unknown param %q for %q", "rate", "sieve")
	assert.Equal(t, ConfigErrorKind, err.Kind)
	assert.Equal(t, `ConfigError: unknown param "rate" for "sieve"`, err.Error())
}

func TestKindStringFallback(t *testing.T) {
	var k Kind = 99
	assert.Equal(t, "Error", k.String())
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = IOError("boom")
	assert.EqualError(t, err, "IOError: boom")
}
