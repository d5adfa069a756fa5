package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore/mocks"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestStoreHeartbeat_Probe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		buf := captureLog(t)
		store := new(mocks.MockStore)
		store.On("Name").Return("dyfn")
		store.On("ListCollectionNames", mock.Anything, 10).Return([]string{"product"}, nil).Once()

		err := NewStoreHeartbeat(store).Probe(context.Background())

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Store heartbeat ok")
		store.AssertExpectations(t)
	})

	t.Run("Failure is logged and returned", func(t *testing.T) {
		buf := captureLog(t)
		store := new(mocks.MockStore)
		store.On("Name").Return("dyfn")
		store.On("ListCollectionNames", mock.Anything, 10).Return(nil, errors.New("no reachable servers")).Once()

		err := NewStoreHeartbeat(store).Probe(context.Background())

		assert.EqualError(t, err, "no reachable servers")
		assert.Contains(t, buf.String(), "Store heartbeat failed")
	})

	t.Run("No store", func(t *testing.T) {
		err := NewStoreHeartbeat(nil).Probe(context.Background())

		assert.ErrorIs(t, err, docstore.ErrNotConfigured)
	})
}

func TestStoreHeartbeat_Start(t *testing.T) {
	t.Run("Invalid spec", func(t *testing.T) {
		err := NewStoreHeartbeat(new(mocks.MockStore)).Start("every minute")

		assert.ErrorContains(t, err, "invalid heartbeat spec")
	})

	t.Run("Valid spec", func(t *testing.T) {
		captureLog(t)
		h := NewStoreHeartbeat(new(mocks.MockStore))

		require.NoError(t, h.Start("0 0 0 1 1 *"))
		h.Stop()
	})
}
