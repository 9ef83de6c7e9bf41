package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/zerr"
)

func lib(label string, deps ...string) *domain.LibrarySpec {
	target, err := domain.ParseBuildTarget(label)
	if err != nil {
		panic(err)
	}
	spec := &domain.LibrarySpec{Target: target, Output: "build/" + target.ShortName() + ".jar"}
	for _, d := range deps {
		dt, err := domain.ParseBuildTarget(d)
		if err != nil {
			panic(err)
		}
		spec.Deps = append(spec.Deps, dt)
	}
	return spec
}

func TestGraph_AddLibrary(t *testing.T) {
	g := domain.NewGraph()
	core := lib("//app:core")

	if err := g.AddLibrary(core); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddLibrary(core)
	if err == nil {
		t.Fatal("expected error when adding duplicate library, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if target, ok := zErr.Metadata()["target"].(string); !ok || target != "//app:core" {
		t.Errorf("expected metadata target=//app:core, got %v", zErr.Metadata()["target"])
	}
}

func TestGraph_Validate(t *testing.T) {
	tests := []struct {
		name        string
		libs        []*domain.LibrarySpec
		errContains string
	}{
		{
			name:        "self cycle",
			libs:        []*domain.LibrarySpec{lib("//a:a", "//a:a")},
			errContains: "cycle detected",
		},
		{
			name:        "two node cycle",
			libs:        []*domain.LibrarySpec{lib("//a:a", "//b:b"), lib("//b:b", "//a:a")},
			errContains: "cycle detected",
		},
		{
			name:        "missing dependency",
			libs:        []*domain.LibrarySpec{lib("//a:a", "//missing:lib")},
			errContains: "missing dependency",
		},
		{
			name: "chain",
			libs: []*domain.LibrarySpec{lib("//a:a", "//b:b"), lib("//b:b", "//c:c"), lib("//c:c")},
		},
		{
			name: "disconnected",
			libs: []*domain.LibrarySpec{lib("//a:a"), lib("//b:b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewGraph()
			for _, l := range tt.libs {
				require.NoError(t, g.AddLibrary(l))
			}

			err := g.Validate()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGraph_Walk_DependenciesFirst(t *testing.T) {
	g := domain.NewGraph()
	// app -> util, net; net -> util
	require.NoError(t, g.AddLibrary(lib("//app:main", "//lib:util", "//lib:net")))
	require.NoError(t, g.AddLibrary(lib("//lib:net", "//lib:util")))
	require.NoError(t, g.AddLibrary(lib("//lib:util")))
	require.NoError(t, g.Validate())

	var order []string
	for l := range g.Walk() {
		order = append(order, l.Target.String())
	}

	assert.Equal(t, []string{"//lib:util", "//lib:net", "//app:main"}, order)
}

func TestGraph_GetLibrary(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddLibrary(lib("//app:core")))

	got, ok := g.GetLibrary(domain.NewBuildTarget("app", "core"))
	require.True(t, ok)
	assert.Equal(t, "build/core.jar", got.Output)
	assert.Equal(t, 1, g.Len())

	_, ok = g.GetLibrary(domain.NewBuildTarget("app", "other"))
	assert.False(t, ok)
}
