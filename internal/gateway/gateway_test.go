package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Start(t *testing.T) {
	t.Run("should start components in order", func(t *testing.T) {
		first, second := NewComponentMock(t), NewComponentMock(t)

		var order []string
		first.EXPECT().Start(mock.Anything).Run(func(context.Context) { order = append(order, "first") }).Return(nil).Once()
		second.EXPECT().Start(mock.Anything).Run(func(context.Context) { order = append(order, "second") }).Return(nil).Once()

		s := New(first, second)
		require.NoError(t, s.Start(t.Context()))
		assert.Equal(t, []string{"first", "second"}, order)
		assert.True(t, s.isStarted)
	})

	t.Run("should reject a second start", func(t *testing.T) {
		c := NewComponentMock(t)
		c.EXPECT().Start(mock.Anything).Return(nil).Once()

		s := New(c)
		require.NoError(t, s.Start(t.Context()))
		assert.ErrorIs(t, s.Start(t.Context()), ErrServiceAlreadyStarted)
	})

	t.Run("should close started components when one fails", func(t *testing.T) {
		first, second, third := NewComponentMock(t), NewComponentMock(t), NewComponentMock(t)

		first.EXPECT().Start(mock.Anything).Return(nil).Once()
		first.EXPECT().Close().Return().Once()
		second.EXPECT().Start(mock.Anything).Return(assert.AnError).Once()

		s := New(first, second, third)
		err := s.Start(t.Context())

		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, s.isStarted)
		assert.Nil(t, s.closeFunc)
	})

	t.Run("should cancel the context handed to components on close", func(t *testing.T) {
		c := NewComponentMock(t)

		var got context.Context
		c.EXPECT().Start(mock.Anything).Run(func(ctx context.Context) { got = ctx }).Return(nil).Once()
		c.EXPECT().Close().Return().Once()

		s := New(c)
		require.NoError(t, s.Start(t.Context()))
		require.NoError(t, got.Err())

		s.Close()
		assert.Error(t, got.Err())
	})
}

func TestService_Close(t *testing.T) {
	t.Run("should close components in reverse order", func(t *testing.T) {
		first, second := NewComponentMock(t), NewComponentMock(t)

		var order []string
		first.EXPECT().Start(mock.Anything).Return(nil).Once()
		second.EXPECT().Start(mock.Anything).Return(nil).Once()
		first.EXPECT().Close().Run(func() { order = append(order, "first") }).Return().Once()
		second.EXPECT().Close().Run(func() { order = append(order, "second") }).Return().Once()

		s := New(first, second)
		require.NoError(t, s.Start(t.Context()))
		s.Close()

		assert.Equal(t, []string{"second", "first"}, order)
		assert.False(t, s.isStarted)
	})

	t.Run("should be safe before start and when repeated", func(t *testing.T) {
		c := NewComponentMock(t)
		c.EXPECT().Start(mock.Anything).Return(nil).Once()
		c.EXPECT().Close().Return().Once()

		s := New(c)
		s.Close()

		require.NoError(t, s.Start(t.Context()))
		s.Close()
		s.Close()
	})

	t.Run("should allow a restart after close", func(t *testing.T) {
		c := NewComponentMock(t)
		c.EXPECT().Start(mock.Anything).Return(nil).Twice()
		c.EXPECT().Close().Return().Twice()

		s := New(c)
		require.NoError(t, s.Start(t.Context()))
		s.Close()
		require.NoError(t, s.Start(t.Context()))
		s.Close()
	})
}
