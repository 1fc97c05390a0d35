package typemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryOrInsert(t *testing.T) {
	m := New()

	value := EntryOf[counterKey](m).OrInsert(Counter{Value: 20})
	value.Value++

	got, ok := Get[counterKey](m)
	require.True(t, ok)
	require.Equal(t, 21, got.Value)

	// the slot is occupied now, the default must not be used
	value = EntryOf[counterKey](m).OrInsert(Counter{Value: 100})
	value.Value++

	got, _ = Get[counterKey](m)
	require.Equal(t, 22, got.Value)
}

func TestEntryOrInsertWith(t *testing.T) {
	m := New()

	var calls int
	produce := func() Counter {
		calls++
		return Counter{Value: 5}
	}

	value := EntryOf[counterKey](m).OrInsertWith(produce)
	require.Equal(t, 5, value.Value)
	require.Equal(t, 1, calls)

	EntryOf[counterKey](m).OrInsertWith(produce)
	require.Equal(t, 1, calls)
}

func TestEntryOccupied(t *testing.T) {
	m := New()

	Insert[counterKey](m, Counter{Value: 20})

	occupied, ok := EntryOf[counterKey](m).Occupied()
	require.True(t, ok)
	require.Equal(t, Counter{Value: 20}, *occupied.Get())

	require.Equal(t, Counter{Value: 20}, occupied.Remove())
	require.False(t, Contains[counterKey](m))

	_, ok = EntryOf[counterKey](m).Occupied()
	require.False(t, ok)
}

func TestEntryOccupiedInsert(t *testing.T) {
	m := New()

	Insert[counterKey](m, Counter{Value: 1})

	occupied, ok := EntryOf[counterKey](m).Occupied()
	require.True(t, ok)

	prev := occupied.Insert(Counter{Value: 2})
	require.Equal(t, Counter{Value: 1}, prev)

	value, ok := Get[counterKey](m)
	require.True(t, ok)
	require.Equal(t, Counter{Value: 2}, *value)
}

func TestEntryVacant(t *testing.T) {
	m := New()

	vacant, ok := EntryOf[counterKey](m).Vacant()
	require.True(t, ok)

	value := vacant.Insert(Counter{Value: 1})
	value.Value = 9

	got, ok := Get[counterKey](m)
	require.True(t, ok)
	require.Equal(t, 9, got.Value)

	_, ok = EntryOf[counterKey](m).Vacant()
	require.False(t, ok)
}

func TestEntryGetAfterRemovePanics(t *testing.T) {
	m := New()

	Insert[counterKey](m, Counter{Value: 1})
	occupied, ok := EntryOf[counterKey](m).Occupied()
	require.True(t, ok)

	Remove[counterKey](m)
	require.Panics(t, func() { occupied.Get() })
}
