package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ n int }
type pong struct{}

func TestBusDispatchByType(t *testing.T) {
	b := New()
	var got []int
	On(b, func(_ context.Context, e ping) { got = append(got, e.n) })
	On(b, func(_ context.Context, e ping) { got = append(got, e.n*10) })
	var pongs int
	On(b, func(context.Context, pong) { pongs++ })

	Emit(context.Background(), b, ping{n: 1})
	Emit(context.Background(), b, pong{})

	require.Equal(t, []int{1, 10}, got)
	require.Equal(t, 1, pongs)
}

func TestUnsubscribeRemovesOnlyOwnHandler(t *testing.T) {
	b := New()
	var first, second int
	unsubFirst := On(b, func(context.Context, ping) { first++ })
	On(b, func(context.Context, ping) { second++ })

	unsubFirst()
	unsubFirst()
	Emit(context.Background(), b, ping{})

	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
}

func TestGlobalBus(t *testing.T) {
	t.Cleanup(func() { Use(nil) })

	Use(nil)
	Publish(context.Background(), ping{})
	require.NotNil(t, Subscribe(func(context.Context, ping) {}))

	Use(New())
	var seen []int
	unsub := Subscribe(func(_ context.Context, e ping) { seen = append(seen, e.n) })
	Publish(context.Background(), ping{n: 7})
	unsub()
	Publish(context.Background(), ping{n: 8})

	require.Equal(t, []int{7}, seen)
}
