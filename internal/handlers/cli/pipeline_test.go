package cli

import (
	"context"
	"errors"
	"testing"

	gatewaytest "github.com/gabapcia/txbatch/internal/gateway/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestServeCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Act
		cmd := serveCommand(NewRuntimeMock(t))

		// Assert
		assert.Equal(t, "serve", cmd.Name)
		assert.Len(t, cmd.Flags, 0)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should return the build error", func(t *testing.T) {
		// Arrange
		rt := NewRuntimeMock(t)
		rt.EXPECT().Gateway(mock.Anything).Return(nil, errors.New("upstream url required")).Once()

		app := &cli.Command{Commands: []*cli.Command{serveCommand(rt)}}

		// Act
		err := app.Run(t.Context(), []string{"test", "serve"})

		// Assert
		assert.ErrorContains(t, err, "upstream url required")
	})

	t.Run("should return error when service start fails", func(t *testing.T) {
		// Arrange
		svc := gatewaytest.NewService(t)
		svc.EXPECT().Start(mock.Anything).Return(errors.New("address in use")).Once()
		// Close should not be called if Start fails

		rt := NewRuntimeMock(t)
		rt.EXPECT().Gateway(mock.Anything).Return(svc, nil).Once()

		app := &cli.Command{Commands: []*cli.Command{serveCommand(rt)}}

		// Act
		err := app.Run(t.Context(), []string{"test", "serve"})

		// Assert
		assert.ErrorContains(t, err, "address in use")
	})
}

func TestSessionStoreCommand(t *testing.T) {
	t.Run("should run the session store until the context ends", func(t *testing.T) {
		// Arrange
		svc := gatewaytest.NewService(t)
		svc.EXPECT().Start(mock.Anything).Return(nil).Once()
		svc.EXPECT().Close().Return().Once()

		rt := NewRuntimeMock(t)
		rt.EXPECT().SessionStore(mock.Anything).Return(svc, nil).Once()

		app := &cli.Command{Commands: []*cli.Command{sessionStoreCommand(rt)}}

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Act
		err := app.Run(ctx, []string{"test", "session-store"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should return the build error", func(t *testing.T) {
		// Arrange
		rt := NewRuntimeMock(t)
		rt.EXPECT().SessionStore(mock.Anything).Return(nil, assert.AnError).Once()

		app := &cli.Command{Commands: []*cli.Command{sessionStoreCommand(rt)}}

		// Act
		err := app.Run(t.Context(), []string{"test", "session-store"})

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})
}
