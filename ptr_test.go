package openrtb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPtr(t *testing.T) {
	v := ToPtr(int64(42))
	require.NotNil(t, v)
	assert.Equal(t, int64(42), *v)
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone[int64](nil))

	orig := ToPtr(int64(7))
	clone := Clone(orig)
	require.NotNil(t, clone)
	assert.Equal(t, *orig, *clone)
	assert.NotSame(t, orig, clone)
}

func TestValueOrDefault(t *testing.T) {
	assert.Equal(t, int64(0), ValueOrDefault[int64](nil))
	assert.Equal(t, int64(9), ValueOrDefault(ToPtr(int64(9))))
	assert.Equal(t, "", ValueOrDefault[string](nil))
}
