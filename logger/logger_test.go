// SPDX-License-Identifier: MIT

package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsimplex/logger"
)

func TestNew(t *testing.T) {
	l, err := logger.New(logger.Config{Level: "debug", Encoding: "console", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = logger.New(logger.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	require.Error(t, err)
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := context.WithValue(context.Background(), logger.ProblemKey, "lp.yaml")
	ctx = context.WithValue(ctx, logger.KindKey, "fraction")

	logger.WithContext(ctx, zap.New(core)).Info("solved")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "lp.yaml", fields["problem"])
	assert.Equal(t, "fraction", fields["kind"])
}

func TestWithContext_NilLogger(t *testing.T) {
	l := logger.WithContext(context.Background(), nil)
	require.NotNil(t, l)
	l.Info("discarded")
}
