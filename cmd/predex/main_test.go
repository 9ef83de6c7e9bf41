package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/predex/internal/app"
	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	app    *app.App
}

func newTestComponents(t *testing.T) testComponents {
	t.Helper()
	ctrl := gomock.NewController(t)

	c := testComponents{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	c.app = app.New(
		c.loader,
		mocks.NewMockExecutor(ctrl),
		c.logger,
		mocks.NewMockRecordStore(ctrl),
		mocks.NewMockClassIndexer(ctrl),
		mocks.NewMockFilesystem(ctrl),
	)
	return c
}

func (c testComponents) provider() ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: c.app, Logger: c.logger}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	c := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, c.provider())
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when
// the command fails.
func TestRun_ExecutionError(t *testing.T) {
	c := newTestComponents(t)
	c.loader.EXPECT().Load(".").Return(nil, errors.New("load failed"))
	c.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "load failed")
	})

	exitCode := run(context.Background(), []string{"plan"}, new(bytes.Buffer), c.provider())
	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailureNotLogged verifies that rule failures, which the
// renderer already reported, are not logged a second time.
func TestRun_BuildFailureNotLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Times(0)

	application := app.New(failingLoader{}, nil, logger, nil, nil, nil)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"clean"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

type failingLoader struct{}

func (failingLoader) Load(string) (*domain.Workspace, error) {
	return nil, domain.ErrBuildExecutionFailed
}
