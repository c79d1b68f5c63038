package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethodCanonical(t *testing.T) {
	tokens := []string{"GET", "DELETE", "POST", "PUT", "HEAD", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

	require.Len(t, Methods(), len(tokens))
	for i, token := range tokens {
		m, err := ParseMethod(token)
		require.NoError(t, err, "Method %s should be valid", token)
		assert.Equal(t, Methods()[i], m)
		assert.Equal(t, token, m.String())
		assert.True(t, m.Valid())
	}
}

func TestParseMethodUnknown(t *testing.T) {
	for _, token := range []string{"", "get", "Get", " GET", "GET ", "FETCH", "GETX", "PROPFIND", "G"} {
		m, err := ParseMethod(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownMethod)
		assert.False(t, m.Valid())

		var unknown *UnknownMethodError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, token, unknown.Token)
	}
}

func TestMethodStringOutOfRange(t *testing.T) {
	var zero Method
	assert.False(t, zero.Valid())
	assert.Equal(t, "Method(0)", zero.String())
	assert.Equal(t, "Method(42)", Method(42).String())
}
