// Package config provides the configuration loader for predex.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration version understood by this loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds predex.yaml in cwd or one of its parents and returns the
// validated workspace it describes.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Predexfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SupportedVersion))
	}

	if len(file.Dx) == 0 || strings.TrimSpace(file.Dx[0]) == "" {
		return nil, zerr.With(domain.ErrMissingTranslator, "path", configPath)
	}

	root := filepath.Dir(configPath)
	genDir := file.GenDir
	if genDir == "" {
		genDir = domain.DefaultGenDir
	}

	graph, err := buildGraph(root, file.Libraries)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return &domain.Workspace{
		Root:        root,
		GenDir:      resolvePath(root, genDir),
		Translator:  slices.Clone(file.Dx),
		Environment: file.Environment,
		Graph:       graph,
	}, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		currentDir = parentDir
	}
}

func buildGraph(root string, libraries map[string]LibraryDTO) (*domain.Graph, error) {
	g := domain.NewGraph()

	for label, dto := range libraries {
		target, err := domain.ParseBuildTarget(label)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(dto.Output) == "" {
			return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "library", label), "missing", "output")
		}

		deps, err := parseDeps(dto.Deps)
		if err != nil {
			return nil, zerr.With(err, "library", label)
		}

		spec := &domain.LibrarySpec{
			Target: target,
			Output: resolvePath(root, dto.Output),
			Deps:   deps,
		}
		if err := g.AddLibrary(spec); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// parseDeps parses, sorts and deduplicates dependency labels.
func parseDeps(labels []string) ([]domain.BuildTarget, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	deps := make([]domain.BuildTarget, len(sorted))
	for i, label := range sorted {
		dep, err := domain.ParseBuildTarget(label)
		if err != nil {
			return nil, err
		}
		deps[i] = dep
	}
	return deps, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
