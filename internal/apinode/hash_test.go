package apinode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBodyDeterministic(t *testing.T) {
	a := HashBody([]byte("#define FOO 1"))
	b := HashBody([]byte("#define FOO 1"))
	c := HashBody([]byte("#define FOO 2"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16) // 8 bytes, hex-encoded
}
