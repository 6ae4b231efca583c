package alloc

import (
	"math"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A int32
	B int64
}

func TestArrayOf(t *testing.T) {
	l, err := ArrayOf[pair](10)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[pair](), l.Type)
	assert.Equal(t, unsafe.Sizeof(pair{}), l.Size)
	assert.Equal(t, uintptr(unsafe.Alignof(pair{})), l.Align)
	assert.Equal(t, 10*int(unsafe.Sizeof(pair{})), l.Bytes())
}

func TestArrayOf_ZeroSizeElement(t *testing.T) {
	l, err := ArrayOf[struct{}](1 << 40)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Bytes())
}

func TestArrayOf_Rejects(t *testing.T) {
	_, err := ArrayOf[int64](0)
	require.ErrorIs(t, err, ErrBadLayout)

	_, err = ArrayOf[int64](-3)
	require.ErrorIs(t, err, ErrBadLayout)

	_, err = ArrayOf[int64](math.MaxInt/8 + 1)
	require.ErrorIs(t, err, ErrLayoutOverflow)
}

func TestHasPointers(t *testing.T) {
	type flat struct {
		X, Y float64
		Tag  [4]byte
	}
	type nested struct {
		F    flat
		Name string
	}
	cases := []struct {
		t    reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), false},
		{reflect.TypeFor[flat](), false},
		{reflect.TypeFor[[8]uint16](), false},
		{reflect.TypeFor[[0]*int](), false},
		{reflect.TypeFor[string](), true},
		{reflect.TypeFor[*int](), true},
		{reflect.TypeFor[[]byte](), true},
		{reflect.TypeFor[nested](), true},
		{reflect.TypeFor[[2]map[int]int](), true},
		{reflect.TypeFor[any](), true},
		{reflect.TypeFor[unsafe.Pointer](), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPointers(c.t), "HasPointers(%v)", c.t)
	}
}
