package scheduler_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/predex/internal/core/ports/mocks"
	"go.trai.ch/predex/internal/engine/runner"
	"go.trai.ch/predex/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

const (
	root    = "/ws"
	genDir  = "/ws/out/gen"
	utilJar = "/ws/build/util.jar"
	coreDir = "/ws/build/core-classes"
	utilDex = "/ws/out/gen/lib/util.dex.jar"
	coreDex = "/ws/out/gen/app/core.dex.jar"
	utilFP  = domain.Fingerprint("000000000000000u")
	coreFP  = domain.Fingerprint("000000000000000c")
)

var (
	utilTarget = domain.NewBuildTarget("lib", "util")
	coreTarget = domain.NewBuildTarget("app", "core")
)

type schedulerTestMocks struct {
	indexer    *mocks.MockClassIndexer
	store      *mocks.MockRecordStore
	fs         *mocks.MockFilesystem
	translator *mocks.MockTranslator
	sessions   map[string]*mocks.MockRecordSession
}

func setupSchedulerTest(t *testing.T) (*scheduler.Scheduler, schedulerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := schedulerTestMocks{
		indexer:    mocks.NewMockClassIndexer(ctrl),
		store:      mocks.NewMockRecordStore(ctrl),
		fs:         mocks.NewMockFilesystem(ctrl),
		translator: mocks.NewMockTranslator(ctrl),
		sessions:   make(map[string]*mocks.MockRecordSession),
	}

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	mockSpan.EXPECT().Write(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()

	for _, target := range []string{utilTarget.String(), coreTarget.String()} {
		m.sessions[target] = mocks.NewMockRecordSession(ctrl)
	}
	factory := func(target domain.BuildTarget) ports.RecordSession {
		return m.sessions[target.String()]
	}

	rn := runner.New(m.fs, m.translator, tracer)
	return scheduler.New(rn, m.indexer, m.store, m.fs, tracer, factory), m
}

// newWorkspace declares //lib:util (a jar with classes) and //app:core
// (an empty class directory depending on util).
func newWorkspace(t *testing.T) *domain.Workspace {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddLibrary(&domain.LibrarySpec{Target: utilTarget, Output: utilJar}))
	require.NoError(t, g.AddLibrary(&domain.LibrarySpec{Target: coreTarget, Output: coreDir, Deps: []domain.BuildTarget{utilTarget}}))
	require.NoError(t, g.Validate())

	return &domain.Workspace{Root: root, GenDir: genDir, Translator: []string{"dx"}, Graph: g}
}

func expectIndex(m schedulerTestMocks) {
	m.indexer.EXPECT().Index(utilJar, gomock.Len(0)).
		Return(domain.NewClassIndex(map[string]domain.Fingerprint{"lib.Util": "h1"}, utilFP), nil)
	m.indexer.EXPECT().Index(coreDir, []domain.Fingerprint{utilFP}).
		Return(domain.NewClassIndex(nil, coreFP), nil)
}

func expectExecuted(m schedulerTestMocks, target domain.BuildTarget, dexPath string, fp domain.Fingerprint, artifact bool) {
	session := m.sessions[target.String()]
	m.store.EXPECT().Delete(root, target).Return(nil)
	m.fs.EXPECT().Remove(dexPath, true).Return(nil)
	m.fs.EXPECT().EnsureDirectory(gomock.Any()).Return(nil)
	if artifact {
		m.translator.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any(), dexPath, gomock.Any()).Return(nil)
		session.EXPECT().RecordArtifact(dexPath).Return(nil)
	}
	session.EXPECT().AddMetadata(domain.MetadataKeyABIKeyForDeps, fp.String()).Return(nil)
	session.EXPECT().AddMetadata(domain.MetadataKeyABIKey, fp.String()).Return(nil)
	session.EXPECT().Commit().Return(nil)
}

func storedRecord(target domain.BuildTarget, fp domain.Fingerprint) *domain.BuildRecord {
	return &domain.BuildRecord{
		Target: target.String(),
		Metadata: map[string]string{
			domain.MetadataKeyABIKeyForDeps: fp.String(),
			domain.MetadataKeyABIKey:        fp.String(),
		},
	}
}

func TestScheduler_Prepare(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)

	rules, err := s.Prepare(context.Background(), newWorkspace(t))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, utilTarget, rules[0].Target())
	assert.Equal(t, utilDex, rules[0].PathToDex())
	fp, err := rules[0].DependencyFingerprint()
	require.NoError(t, err)
	assert.Equal(t, utilFP, fp)

	assert.Equal(t, coreTarget, rules[1].Target())
	hasOutput, err := rules[1].HasOutput()
	require.NoError(t, err)
	assert.False(t, hasOutput)
}

func TestScheduler_RunsAllRules(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(root, gomock.Any()).Return(nil, nil).Times(2)
	expectExecuted(m, utilTarget, utilDex, utilFP, true)
	expectExecuted(m, coreTarget, coreDex, coreFP, false)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 2})
	require.NoError(t, err)
	require.Len(t, report.Rules, 2)

	assert.Equal(t, domain.RuleStatusCompleted, report.Rules[0].Status)
	assert.Equal(t, domain.RuleMetadataRecorded, report.Rules[0].State)
	assert.Equal(t, domain.RuleStatusCompleted, report.Rules[1].Status)
	assert.False(t, report.Rules[1].Output.IsPresent())

	assert.Equal(t, map[string]domain.Fingerprint{"//lib:util": utilFP}, report.Outputs())
	assert.Equal(t, 2, report.Count(domain.RuleStatusCompleted))
	assert.Equal(t, domain.RuleStatusCompleted, s.Status(utilTarget))
}

func TestScheduler_CacheHit(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(root, utilTarget).Return(storedRecord(utilTarget, utilFP), nil)
	m.store.EXPECT().Get(root, coreTarget).Return(storedRecord(coreTarget, coreFP), nil)
	// Only the rule with an artifact checks that it is still there.
	m.fs.EXPECT().Exists(utilDex).Return(true, nil)
	m.translator.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Count(domain.RuleStatusCached))
	assert.Equal(t, map[string]domain.Fingerprint{"//lib:util": utilFP}, report.Outputs())
	assert.Equal(t, domain.RuleStatusCached, s.Status(coreTarget))
}

func TestScheduler_CacheMiss(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m schedulerTestMocks)
	}{
		{
			name: "fingerprint changed",
			setup: func(m schedulerTestMocks) {
				m.store.EXPECT().Get(root, utilTarget).Return(storedRecord(utilTarget, "stale"), nil)
			},
		},
		{
			name: "artifact missing",
			setup: func(m schedulerTestMocks) {
				m.store.EXPECT().Get(root, utilTarget).Return(storedRecord(utilTarget, utilFP), nil)
				m.fs.EXPECT().Exists(utilDex).Return(false, nil)
			},
		},
		{
			name: "no record",
			setup: func(m schedulerTestMocks) {
				m.store.EXPECT().Get(root, utilTarget).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := setupSchedulerTest(t)
			expectIndex(m)
			tt.setup(m)
			m.store.EXPECT().Get(root, coreTarget).Return(storedRecord(coreTarget, coreFP), nil)
			expectExecuted(m, utilTarget, utilDex, utilFP, true)

			report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 1})
			require.NoError(t, err)
			assert.Equal(t, domain.RuleStatusCompleted, report.Rules[0].Status)
			assert.Equal(t, domain.RuleStatusCached, report.Rules[1].Status)
		})
	}
}

func TestScheduler_NoCache(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	expectExecuted(m, utilTarget, utilDex, utilFP, true)
	expectExecuted(m, coreTarget, coreDex, coreFP, false)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 2, NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count(domain.RuleStatusCompleted))
}

func TestScheduler_FailureDoesNotStopOtherRules(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(root, gomock.Any()).Return(nil, nil).Times(2)

	m.store.EXPECT().Delete(root, utilTarget).Return(nil)
	m.fs.EXPECT().Remove(utilDex, true).Return(nil)
	m.fs.EXPECT().EnsureDirectory(gomock.Any()).Return(nil)
	m.translator.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any(), utilDex, gomock.Any()).
		Return(errors.New("exit status 1"))
	m.sessions[utilTarget.String()].EXPECT().Commit().Times(0)
	expectExecuted(m, coreTarget, coreDex, coreFP, false)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 2})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRuleExecutionFailed.Error())
	assert.ErrorContains(t, err, domain.ErrToolInvocation.Error())

	require.NotNil(t, report)
	assert.Equal(t, domain.RuleStatusFailed, report.Rules[0].Status)
	assert.Equal(t, domain.RuleFailed, report.Rules[0].State)
	assert.Equal(t, domain.RuleStatusCompleted, report.Rules[1].Status)
	assert.Empty(t, report.Outputs())
	assert.Equal(t, domain.RuleStatusFailed, s.Status(utilTarget))
}

func TestScheduler_CommitFailure(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(root, gomock.Any()).Return(nil, nil).Times(2)
	expectExecuted(m, utilTarget, utilDex, utilFP, true)

	core := m.sessions[coreTarget.String()]
	m.store.EXPECT().Delete(root, coreTarget).Return(nil)
	m.fs.EXPECT().Remove(coreDex, true).Return(nil)
	m.fs.EXPECT().EnsureDirectory(gomock.Any()).Return(nil)
	core.EXPECT().AddMetadata(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	core.EXPECT().Commit().Return(domain.ErrStoreWriteFailed)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreWriteFailed.Error())
	assert.Equal(t, domain.RuleStatusFailed, report.Rules[1].Status)
}

func TestScheduler_InvalidateFailure(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(root, gomock.Any()).Return(nil, nil).Times(2)
	m.store.EXPECT().Delete(root, utilTarget).Return(domain.ErrStoreWriteFailed)
	m.fs.EXPECT().Remove(utilDex, gomock.Any()).Times(0)
	m.sessions[utilTarget.String()].EXPECT().Commit().Times(0)
	expectExecuted(m, coreTarget, coreDex, coreFP, false)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreWriteFailed.Error())
	assert.Equal(t, domain.RuleStatusFailed, report.Rules[0].Status)
	assert.Equal(t, domain.RuleStatusCompleted, report.Rules[1].Status)
}

func TestScheduler_StoreReadFailure(t *testing.T) {
	s, m := setupSchedulerTest(t)
	expectIndex(m)
	m.store.EXPECT().Get(root, utilTarget).Return(nil, domain.ErrStoreUnmarshalFailed)
	m.store.EXPECT().Get(root, coreTarget).Return(storedRecord(coreTarget, coreFP), nil)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
	assert.Equal(t, domain.RuleStatusFailed, report.Rules[0].Status)
	assert.Equal(t, domain.RuleStatusCached, report.Rules[1].Status)
}

func TestScheduler_IndexFailure(t *testing.T) {
	s, m := setupSchedulerTest(t)
	m.indexer.EXPECT().Index(utilJar, gomock.Any()).Return(domain.ClassIndex{}, domain.ErrIndexFailed)

	report, err := s.Run(context.Background(), newWorkspace(t), scheduler.Options{Parallelism: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrIndexFailed.Error())
	assert.Nil(t, report)
}

func TestScheduler_Canceled(t *testing.T) {
	s, m := setupSchedulerTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	m.indexer.EXPECT().Index(gomock.Any(), gomock.Any()).Times(0)
	cancel()

	_, err := s.Run(ctx, newWorkspace(t), scheduler.Options{Parallelism: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScheduler_ParallelismLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, m := setupSchedulerTest(t)

		g := domain.NewGraph()
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			target := domain.NewBuildTarget("lib", name)
			require.NoError(t, g.AddLibrary(&domain.LibrarySpec{Target: target, Output: "/ws/" + name + ".jar"}))
		}
		require.NoError(t, g.Validate())
		ws := &domain.Workspace{Root: root, GenDir: genDir, Graph: g}

		m.indexer.EXPECT().Index(gomock.Any(), gomock.Any()).
			Return(domain.NewClassIndex(map[string]domain.Fingerprint{"a.A": "h"}, "fp"), nil).Times(5)
		m.store.EXPECT().Delete(root, gomock.Any()).Return(nil).Times(5)
		m.fs.EXPECT().Remove(gomock.Any(), true).Return(nil).Times(5)
		m.fs.EXPECT().EnsureDirectory(gomock.Any()).Return(nil).Times(5)

		var mu sync.Mutex
		active, peak := 0, 0
		m.translator.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, []string, domain.DxOptions, string, io.Writer) error {
				mu.Lock()
				active++
				peak = max(peak, active)
				mu.Unlock()

				time.Sleep(time.Second)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			}).Times(5)

		session := mocks.NewMockRecordSession(gomock.NewController(t))
		session.EXPECT().RecordArtifact(gomock.Any()).Return(nil).AnyTimes()
		session.EXPECT().AddMetadata(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		session.EXPECT().Commit().Return(nil).AnyTimes()
		factory := func(domain.BuildTarget) ports.RecordSession { return session }

		tracer := mocks.NewMockTracer(gomock.NewController(t))
		tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
				return ctx, noopSpan{}
			},
		).AnyTimes()
		tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()

		s = scheduler.New(runner.New(m.fs, m.translator, tracer), m.indexer, m.store, m.fs, tracer, factory)

		report, err := s.Run(context.Background(), ws, scheduler.Options{Parallelism: 2, NoCache: true})
		require.NoError(t, err)
		assert.Equal(t, 5, report.Count(domain.RuleStatusCompleted))
		assert.Equal(t, 2, peak)
	})
}

type noopSpan struct{}

func (noopSpan) End()                        {}
func (noopSpan) RecordError(error)           {}
func (noopSpan) SetAttribute(string, any)    {}
func (noopSpan) Write(p []byte) (int, error) { return len(p), nil }
