package closer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFO(t *testing.T) {
	c := NewCloser(time.Second)

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	c.AddFunc("db", record("db"))
	c.AddFunc("cache", record("cache"))
	c.AddFunc("http", record("http"))

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "cache", "db"}, order)
}

func TestCloser_CollectsNamedErrors(t *testing.T) {
	c := NewCloser(time.Second)
	c.AddNamed("kafka", func(context.Context) error { return errors.New("writer closed") })
	c.AddFunc("db", func() {})

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka: writer closed")
}

func TestCloser_ForcedAfterTimeout(t *testing.T) {
	c := NewCloser(500 * time.Millisecond)

	var forced atomic.Int32
	c.AddNamed("db", func(context.Context) error {
		forced.Add(1)
		return nil
	})
	c.AddNamed("http server", func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted at http server after 0/2")
	assert.Equal(t, int32(1), forced.Load())
}

func TestCloser_CloseOnce(t *testing.T) {
	c := NewCloser(0)
	calls := 0
	c.AddFunc("once", func() { calls++ })

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloser_UnnamedErrors(t *testing.T) {
	c := NewCloser(time.Second)
	c.Add(func(context.Context) error { return errors.New("boom") })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unnamed: boom")
}
