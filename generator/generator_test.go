package generator

import (
	"testing"

	"github.com/koykov/prngbench/rng"
	"github.com/stretchr/testify/require"
)

var stagesBounds = []struct{ min, max int }{
	{0, 10000},
	{0, 1},
	{-50, 50},
	{1 << 20, 1<<20 + 7},
	{-1000, -10},
}

func TestLCG(t *testing.T) {
	t.Run("first draw", func(t *testing.T) {
		g, err := NewLCG(6089, 0, 10000)
		require.NoError(t, err)
		require.Equal(t, 6780, g.Next())
		require.Equal(t, uint64(4071196780), g.Seed())
	})
	t.Run("32-bit state", func(t *testing.T) {
		g, err := NewLCG(1<<40|6089, 0, 10000)
		require.NoError(t, err)
		// High bits of initial seed are truncated by the first step.
		require.Equal(t, 6780, g.Next())
		for i := 0; i < 1000; i++ {
			g.Next()
			require.Less(t, g.Seed(), uint64(1<<32))
		}
	})
	t.Run("determinism", func(t *testing.T) {
		a, _ := NewLCG(6089, 0, 10000)
		b, _ := NewLCG(6089, 0, 10000)
		for i := 0; i < 10000; i++ {
			require.Equal(t, a.Next(), b.Next(), "draw %d", i)
		}
	})
	t.Run("bounds", func(t *testing.T) {
		for _, stage := range stagesBounds {
			g, err := NewLCG(6089, stage.min, stage.max)
			require.NoError(t, err)
			for i := 0; i < 10000; i++ {
				v := g.Next()
				require.GreaterOrEqual(t, v, stage.min)
				require.Less(t, v, stage.max)
			}
		}
	})
	t.Run("bad bounds", func(t *testing.T) {
		_, err := NewLCG(6089, 10, 10)
		require.ErrorIs(t, err, ErrBadBounds)
		_, err = NewLCG(6089, 10, 5)
		require.ErrorIs(t, err, ErrBadBounds)
	})
}

func TestXorShift(t *testing.T) {
	t.Run("first draw", func(t *testing.T) {
		g, err := NewXorShift(6089, 0, 10000)
		require.NoError(t, err)
		require.Equal(t, 7675, g.Next())
		require.Equal(t, uint64(1603487675), g.Seed())
	})
	t.Run("reduced state", func(t *testing.T) {
		g, _ := NewXorShift(6089, 0, 10000)
		for i := 0; i < 10000; i++ {
			g.Next()
			require.Less(t, g.Seed(), uint64(xorshiftMod))
		}
	})
	t.Run("zero seed", func(t *testing.T) {
		g, _ := NewXorShift(0, 3, 10)
		for i := 0; i < 10; i++ {
			require.Equal(t, 3, g.Next())
		}
	})
	t.Run("determinism", func(t *testing.T) {
		a, _ := NewXorShift(6089, 0, 10000)
		b, _ := NewXorShift(6089, 0, 10000)
		for i := 0; i < 10000; i++ {
			require.Equal(t, a.Next(), b.Next(), "draw %d", i)
		}
	})
	t.Run("bounds", func(t *testing.T) {
		for _, stage := range stagesBounds {
			g, err := NewXorShift(6089, stage.min, stage.max)
			require.NoError(t, err)
			for i := 0; i < 10000; i++ {
				v := g.Next()
				require.GreaterOrEqual(t, v, stage.min)
				require.Less(t, v, stage.max)
			}
		}
	})
	t.Run("bad bounds", func(t *testing.T) {
		_, err := NewXorShift(6089, 0, 0)
		require.ErrorIs(t, err, ErrBadBounds)
	})
}

func TestBaseline(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		for _, stage := range stagesBounds {
			g, err := NewBaseline(rng.New(1), stage.min, stage.max)
			require.NoError(t, err)
			for i := 0; i < 10000; i++ {
				v := g.Next()
				require.GreaterOrEqual(t, v, stage.min)
				require.Less(t, v, stage.max)
			}
		}
	})
	t.Run("no source", func(t *testing.T) {
		_, err := NewBaseline(nil, 0, 10)
		require.ErrorIs(t, err, ErrNoSource)
	})
	t.Run("bad bounds", func(t *testing.T) {
		_, err := NewBaseline(rng.New(1), 1, 0)
		require.ErrorIs(t, err, ErrBadBounds)
	})
}

func TestKind(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		stages := []struct {
			in   string
			kind Kind
		}{
			{"1", KindLCG},
			{" 1\n", KindLCG},
			{"LCPRNG", KindLCG},
			{"2", KindXorShift},
			{"xor-shift", KindXorShift},
			{"baseline", KindBaseline},
		}
		for _, stage := range stages {
			k, err := ParseKind(stage.in)
			require.NoError(t, err, stage.in)
			require.Equal(t, stage.kind, k, stage.in)
		}
		for _, in := range []string{"", "0", "3", "foobar"} {
			_, err := ParseKind(in)
			require.ErrorIs(t, err, ErrUnknownKind, in)
		}
	})
	t.Run("new", func(t *testing.T) {
		g, err := New(KindLCG, 6089, 0, 10000)
		require.NoError(t, err)
		require.IsType(t, &LCG{}, g)
		require.Equal(t, 6780, g.Next())

		g, err = New(KindXorShift, 6089, 0, 10000)
		require.NoError(t, err)
		require.Equal(t, 7675, g.Next())

		a, _ := New(KindBaseline, 42, 0, 10000)
		b, _ := New(KindBaseline, 42, 0, 10000)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Next(), b.Next())
		}

		_, err = New(KindUnknown, 6089, 0, 10000)
		require.ErrorIs(t, err, ErrUnknownKind)
		g, err = New(KindLCG, 6089, 1, 1)
		require.ErrorIs(t, err, ErrBadBounds)
		require.Nil(t, g)
	})
	t.Run("string", func(t *testing.T) {
		require.Equal(t, "LCPRNG", KindLCG.String())
		require.Equal(t, "XOR-Shift", KindXorShift.String())
		require.Equal(t, "xorshift", KindXorShift.Label())
		require.Equal(t, "unknown", Kind(100).Label())
	})
}

func BenchmarkGenerator(b *testing.B) {
	for _, kind := range []Kind{KindLCG, KindXorShift, KindBaseline} {
		b.Run(kind.Label(), func(b *testing.B) {
			g, _ := New(kind, 6089, 0, 10000)
			var v int
			for i := 0; i < b.N; i++ {
				v = g.Next()
			}
			_ = v
		})
	}
}
