package domain

import "path/filepath"

const (
	// PredexDirName is the name of the internal workspace directory.
	PredexDirName = ".predex"

	// StoreDirName is the name of the build record store directory.
	StoreDirName = "store"

	// MergeRecordName is the file holding the last merge inputs.
	MergeRecordName = "merge.json"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "predex.yaml"

	// DefaultGenDir is the output root used when the config sets none.
	DefaultGenDir = "predex-out/gen"

	// DexJarSuffix is appended to a target's short name to form its artifact name.
	DexJarSuffix = ".dex.jar"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the build record store.
// It joins .predex and store.
func DefaultStorePath() string {
	return filepath.Join(PredexDirName, StoreDirName)
}

// DefaultMergeRecordPath returns the default path of the merge record.
func DefaultMergeRecordPath() string {
	return filepath.Join(PredexDirName, MergeRecordName)
}

// DexPath returns the canonical artifact location of target under genDir:
// "<genDir>/<basePath>/<shortName>.dex.jar".
// It depends on nothing but its arguments.
func DexPath(genDir string, target BuildTarget) string {
	return filepath.Join(genDir, target.BasePath(), target.ShortName()+DexJarSuffix)
}
