// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgplan/internal/adapters/cache"
	_ "go.trai.ch/pkgplan/internal/adapters/cas"
	_ "go.trai.ch/pkgplan/internal/adapters/catalog"
	_ "go.trai.ch/pkgplan/internal/adapters/config"
	_ "go.trai.ch/pkgplan/internal/adapters/fs"
	_ "go.trai.ch/pkgplan/internal/adapters/logger"
	_ "go.trai.ch/pkgplan/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/pkgplan/internal/app"
	_ "go.trai.ch/pkgplan/internal/engine/solver"
)
