package domain

// LibrarySpec declares an upstream compiled library as read from the config.
type LibrarySpec struct {
	Target BuildTarget
	// Output is the jar file or class directory the library compiles to.
	Output string
	// Deps are the libraries this one depends on.
	Deps []BuildTarget
}

// Workspace is a loaded predex configuration. All paths are absolute.
type Workspace struct {
	// Root is the directory containing predex.yaml.
	Root string
	// GenDir is the output root for generated artifacts.
	GenDir string
	// Translator is the dx command prefix, e.g. ["dx"] or ["java", "-jar", "dx.jar"].
	Translator []string
	// Environment is passed to the translator on top of the allow-listed variables.
	Environment map[string]string
	// Graph holds the declared libraries.
	Graph *Graph
}
