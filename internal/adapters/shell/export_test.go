package shell

// ResolveEnvironment exports resolveEnvironment for tests.
var ResolveEnvironment = resolveEnvironment
