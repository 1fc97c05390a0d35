package typemap

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyValueType(t *testing.T) {
	var key counterKey
	require.Equal(t, reflect.TypeOf((*Counter)(nil)).Elem(), key.ValueType())
}

func TestKeyTypesAreDistinct(t *testing.T) {
	// two key types with the same value type still name different slots
	require.NotEqual(t, keyTypeOf[counterKey](), keyTypeOf[otherKey]())
}
