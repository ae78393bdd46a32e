package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTargetPlatform is returned when a requested package has no descriptor compatible
	// with the target platform.
	ErrUnknownTargetPlatform = zerr.New("no descriptor compatible with target platform")

	// ErrUnsatisfiable is returned when the hard goals of a problem admit no assignment.
	ErrUnsatisfiable = zerr.New("request cannot be satisfied")

	// ErrInternalSearch is returned when the solver produced an assignment that violates a hard constraint.
	ErrInternalSearch = zerr.New("search invariant violated")

	// ErrSearchInterrupted marks a search that stopped before proving optimality.
	// It is informational and never returned from a resolution.
	ErrSearchInterrupted = zerr.New("search interrupted before proving optimality")

	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidRange is returned when a version range cannot be parsed.
	ErrInvalidRange = zerr.New("invalid version range")

	// ErrInvalidToken is returned when a package token is empty or malformed.
	ErrInvalidToken = zerr.New("invalid package token")

	// ErrDuplicateDescriptor is returned when two descriptors share the same package id and version.
	ErrDuplicateDescriptor = zerr.New("duplicate package descriptor")

	// ErrUnknownInstalledPackage is returned when the installed snapshot references an unknown descriptor.
	ErrUnknownInstalledPackage = zerr.New("installed package not found in catalog")

	// ErrCycleDetected is returned when a cycle is detected in the package dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrCatalogNotConfigured is returned when no catalog location is known.
	ErrCatalogNotConfigured = zerr.New("no catalog configured")

	// ErrCatalogReadFailed is returned when a catalog manifest cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog manifest")

	// ErrCatalogParseFailed is returned when a catalog manifest cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog manifest")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidStrategy is returned when an unknown solver strategy is configured.
	ErrInvalidStrategy = zerr.New("unknown solver strategy")

	// ErrInvalidSettings is returned when settings fail validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrStoreReadFailed is returned when a stored solution cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read solution store")

	// ErrStoreWriteFailed is returned when a solution cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write solution store")

	// ErrStoreUnmarshalFailed is returned when a stored solution cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored solution")

	// ErrStoreMarshalFailed is returned when a solution cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal solution")
)
