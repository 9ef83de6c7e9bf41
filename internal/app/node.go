package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/predex/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the application and the dependencies the entry point needs
// directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			cas.NodeID,
			fs.IndexerNodeID,
			fs.FilesystemNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	indexer, err := graft.Dep[ports.ClassIndexer](ctx)
	if err != nil {
		return nil, err
	}

	filesystem, err := graft.Dep[ports.Filesystem](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, log, store, indexer, filesystem), nil
}
