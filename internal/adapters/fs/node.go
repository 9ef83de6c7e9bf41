package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/predex/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// IndexerNodeID is the unique identifier for the class indexer Graft node.
	IndexerNodeID graft.ID = "adapter.fs.indexer"
	// FilesystemNodeID is the unique identifier for the filesystem Graft node.
	FilesystemNodeID graft.ID = "adapter.fs.filesystem"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ClassIndexer]{
		ID:        IndexerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.ClassIndexer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndexer(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Filesystem]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Filesystem, error) {
			return NewFilesystem(), nil
		},
	})
}
