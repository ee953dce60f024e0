/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package coreutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapObject(t *testing.T) {
	require := require.New(t)

	payload := MapObject{}
	require.NoError(JSONUnmarshal([]byte(`{
		"survey": "srv1",
		"count": 42,
		"ratio": 1.5,
		"sealed": true,
		"answers": {"age": 25},
		"waves": [{"name": "pilot"}]
	}`), &payload))

	t.Run("AsString", func(t *testing.T) {
		val, ok, err := payload.AsString("survey")
		require.NoError(err)
		require.True(ok)
		require.Equal("srv1", val)

		val, ok, err = payload.AsString("unknown")
		require.NoError(err)
		require.False(ok)
		require.Empty(val)

		_, ok, err = payload.AsString("count")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("AsStringRequired", func(t *testing.T) {
		val, err := payload.AsStringRequired("survey")
		require.NoError(err)
		require.Equal("srv1", val)

		_, err = payload.AsStringRequired("unknown")
		require.ErrorIs(err, ErrFieldsMissed)

		_, err = payload.AsStringRequired("count")
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("AsObject", func(t *testing.T) {
		obj, ok, err := payload.AsObject("answers")
		require.NoError(err)
		require.True(ok)
		age, ok, err := obj.AsInt64("age")
		require.NoError(err)
		require.True(ok)
		require.Equal(int64(25), age)

		_, ok, err = payload.AsObject("unknown")
		require.NoError(err)
		require.False(ok)

		_, ok, err = payload.AsObject("survey")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("AsObjects", func(t *testing.T) {
		arr, ok, err := payload.AsObjects("waves")
		require.NoError(err)
		require.True(ok)
		require.Len(arr, 1)

		_, ok, err = payload.AsObjects("unknown")
		require.NoError(err)
		require.False(ok)

		_, ok, err = payload.AsObjects("sealed")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("AsInt64", func(t *testing.T) {
		val, ok, err := payload.AsInt64("count")
		require.NoError(err)
		require.True(ok)
		require.Equal(int64(42), val)

		_, ok, err = payload.AsInt64("unknown")
		require.NoError(err)
		require.False(ok)

		_, ok, err = payload.AsInt64("ratio")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)

		_, ok, err = payload.AsInt64("survey")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("AsFloat64", func(t *testing.T) {
		val, ok, err := payload.AsFloat64("ratio")
		require.NoError(err)
		require.True(ok)
		require.Equal(1.5, val)

		val, ok, err = payload.AsFloat64("count")
		require.NoError(err)
		require.True(ok)
		require.Equal(float64(42), val)

		_, ok, err = payload.AsFloat64("unknown")
		require.NoError(err)
		require.False(ok)

		_, ok, err = payload.AsFloat64("sealed")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("AsBoolean", func(t *testing.T) {
		val, ok, err := payload.AsBoolean("sealed")
		require.NoError(err)
		require.True(ok)
		require.True(val)

		_, ok, err = payload.AsBoolean("unknown")
		require.NoError(err)
		require.False(ok)

		_, ok, err = payload.AsBoolean("survey")
		require.True(ok)
		require.ErrorIs(err, ErrFieldTypeMismatch)
	})

	t.Run("numbers decoded by others arrive as float64", func(t *testing.T) {
		m := MapObject{"count": float64(7), "ratio": float64(2.5)}
		i, ok, err := m.AsInt64("count")
		require.NoError(err)
		require.True(ok)
		require.Equal(int64(7), i)
		f, ok, err := m.AsFloat64("ratio")
		require.NoError(err)
		require.True(ok)
		require.Equal(2.5, f)
	})
}
