package log_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/obug/console"
	"go.jacobcolvin.com/obug/debug"
	"go.jacobcolvin.com/obug/log"
	"go.jacobcolvin.com/obug/store"
)

func drain(sub *log.Subscription, n int) []string {
	got := make([]string, 0, n)
	for range n {
		got = append(got, <-sub.C())
	}

	return got
}

func TestNewPublisher(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts    []log.PublisherOption
		wantCap int
	}{
		"default buffer size":   {opts: nil, wantCap: 64},
		"custom buffer size":    {opts: []log.PublisherOption{log.WithBufferSize(128)}, wantCap: 128},
		"clamp zero to one":     {opts: []log.PublisherOption{log.WithBufferSize(0)}, wantCap: 1},
		"clamp negative to one": {opts: []log.PublisherOption{log.WithBufferSize(-5)}, wantCap: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sub := log.NewPublisher(tc.opts...).Subscribe()
			defer sub.Close()

			assert.Equal(t, tc.wantCap, cap(sub.C()))
		})
	}
}

func TestPublisherWrite(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		writes []string
		want   []string
	}{
		"single line": {
			writes: []string{"hello\n"},
			want:   []string{"hello"},
		},
		"multiple lines in one write": {
			writes: []string{"a\nb\nc\n"},
			want:   []string{"a", "b", "c"},
		},
		"line split across writes": {
			writes: []string{"hel", "lo\nwor", "ld\n"},
			want:   []string{"hello", "world"},
		},
		"crlf": {
			writes: []string{"a\r\nb\r\n"},
			want:   []string{"a", "b"},
		},
		"empty lines": {
			writes: []string{"\n\n"},
			want:   []string{"", ""},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pub := log.NewPublisher()
			sub := pub.Subscribe()

			for _, w := range tc.writes {
				n, err := pub.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			assert.Equal(t, tc.want, drain(sub, len(tc.want)))
			assert.Empty(t, sub.C())
		})
	}

	t.Run("multiple subscribers", func(t *testing.T) {
		t.Parallel()

		pub := log.NewPublisher()
		subs := []*log.Subscription{pub.Subscribe(), pub.Subscribe(), pub.Subscribe()}

		_, err := pub.Write([]byte("hello\n"))
		require.NoError(t, err)

		for _, sub := range subs {
			assert.Equal(t, "hello", <-sub.C())
		}
	})

	t.Run("flush partial line", func(t *testing.T) {
		t.Parallel()

		pub := log.NewPublisher()
		sub := pub.Subscribe()

		_, err := pub.Write([]byte("no newline"))
		require.NoError(t, err)
		assert.Empty(t, sub.C())

		pub.Flush()
		assert.Equal(t, "no newline", <-sub.C())

		pub.Flush()
		assert.Empty(t, sub.C())
	})
}

func TestPublisherRingBuffer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		bufSize int
		writes  []string
		want    []string
	}{
		"drops oldest on full": {
			bufSize: 2,
			writes:  []string{"a", "b", "c", "d"},
			want:    []string{"c", "d"},
		},
		"preserves newest entries": {
			bufSize: 3,
			writes:  []string{"1", "2", "3", "4", "5"},
			want:    []string{"3", "4", "5"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pub := log.NewPublisher(log.WithBufferSize(tc.bufSize))
			sub := pub.Subscribe()

			for _, w := range tc.writes {
				_, err := pub.Write([]byte(w + "\n"))
				require.NoError(t, err)
			}

			assert.Equal(t, tc.want, drain(sub, len(tc.want)))
		})
	}
}

func TestSubscriptionClose(t *testing.T) {
	t.Parallel()

	pub := log.NewPublisher()
	sub := pub.Subscribe()

	_, err := pub.Write([]byte("before\n"))
	require.NoError(t, err)

	sub.Close()
	sub.Close()

	_, err = pub.Write([]byte("after\n"))
	require.NoError(t, err)

	assert.Equal(t, "before", <-sub.C())

	_, open := <-sub.C()
	assert.False(t, open, "channel should be closed after subscription close + publish")
}

func TestPublisherClose(t *testing.T) {
	t.Parallel()

	t.Run("closes all subscriptions", func(t *testing.T) {
		t.Parallel()

		pub := log.NewPublisher()
		sub1 := pub.Subscribe()
		sub2 := pub.Subscribe()

		require.NoError(t, pub.Close())
		require.NoError(t, pub.Close())

		_, open1 := <-sub1.C()
		_, open2 := <-sub2.C()

		assert.False(t, open1)
		assert.False(t, open2)
	})

	t.Run("write after close is no-op", func(t *testing.T) {
		t.Parallel()

		pub := log.NewPublisher()
		require.NoError(t, pub.Close())

		n, err := pub.Write([]byte("ignored\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, n)

		sub := pub.Subscribe()
		_, open := <-sub.C()
		assert.False(t, open, "subscription from closed publisher should have closed channel")
	})
}

func TestPublisherConcurrency(t *testing.T) {
	t.Parallel()

	pub := log.NewPublisher(log.WithBufferSize(8))

	var wg sync.WaitGroup

	for range 5 {
		wg.Go(func() {
			for range 100 {
				//nolint:errcheck // Write always returns nil.
				pub.Write([]byte("data\n"))
			}
		})
	}

	for range 5 {
		wg.Go(func() {
			sub := pub.Subscribe()
			for range 20 {
				select {
				case line := <-sub.C():
					assert.Equal(t, "data", line)
				default:
				}
			}

			sub.Close()
		})
	}

	wg.Wait()
	require.NoError(t, pub.Close())
}

func TestPublisherWithConsole(t *testing.T) {
	t.Parallel()

	pub := log.NewPublisher()
	t.Cleanup(func() { require.NoError(t, pub.Close()) })

	sub := pub.Subscribe()

	env := console.NewEnvironment(
		console.WithWriter(pub),
		console.WithEnviron([]string{}),
		console.WithStore(&store.Memory{}),
		console.WithColors(false),
		console.WithHideDate(true),
	)

	f := debug.NewFactory(env)
	f.Enable("app:*")

	f.New("app:db").Log("line one\nline two")

	assert.Equal(t, []string{"app:db line one", "line two"}, drain(sub, 2))
}

func TestPublisherConcurrentDrain(t *testing.T) {
	t.Parallel()

	pub := log.NewPublisher(log.WithBufferSize(1))
	sub := pub.Subscribe()

	var wg sync.WaitGroup

	wg.Go(func() {
		for range sub.C() {
		}
	})

	done := make(chan struct{})

	go func() {
		defer close(done)

		for range 200_000 {
			//nolint:errcheck // Write always returns nil.
			pub.Write([]byte("x\n"))
		}
	}()

	select {
	case <-done:
	case <-time.After(20 * time.Second):
		require.FailNow(t, "Write blocked while a subscriber drained its channel")
	}

	require.NoError(t, pub.Close())
	wg.Wait()
}
