package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_WidgetReturnsSameInstance(t *testing.T) {
	r := NewRegistry(nil)

	first := r.Widget("kernel")
	second := r.Widget("kernel")

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestRegistry_CreateDuplicate(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Create("kernel")
	require.NoError(t, err)

	_, err = r.Create("kernel")
	require.Error(t, err)

	var dup *DuplicateWidgetError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "kernel", dup.Name)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Get("nope")
	require.Error(t, err)

	var unknown *UnknownWidgetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
}

func TestRegistry_GetAfterCreate(t *testing.T) {
	r := NewRegistry(nil)

	created, err := r.Create("notebook")
	require.NoError(t, err)

	got, err := r.Get("notebook")
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestRegistry_FactoryCalledOncePerName(t *testing.T) {
	var mu sync.Mutex
	created := map[string]int{}
	r := NewRegistry(func(name string) Surface {
		mu.Lock()
		created[name]++
		mu.Unlock()
		return Discard()
	})

	r.Widget("kernel")
	r.Widget("kernel")
	r.Widget("notebook")

	assert.Equal(t, map[string]int{"kernel": 1, "notebook": 1}, created)
}

func TestRegistry_NamesInCreationOrder(t *testing.T) {
	r := NewRegistry(nil)
	r.Widget("kernel")
	r.Widget("notebook")
	r.Widget("kernel")

	assert.Equal(t, []string{"kernel", "notebook"}, r.Names())
}

func TestRegistry_ConcurrentWidget(t *testing.T) {
	r := NewRegistry(nil)

	var wg sync.WaitGroup
	results := make([]*Widget, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Widget("kernel")
		}(i)
	}
	wg.Wait()

	for _, w := range results[1:] {
		assert.Same(t, results[0], w)
	}
}
