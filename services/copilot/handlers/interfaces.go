// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers exposes the co-pilot HTTP surface: solution generation,
// submission listing and review, catalog administration, and health.
package handlers

import (
	"context"

	"github.com/nztclabs/netzero-copilot/services/copilot/catalog"
	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
)

// TechnologyCatalog is what the handlers need from the catalog layer.
// *catalog.Catalog implements it; tests substitute stubs.
type TechnologyCatalog interface {
	Ready(ctx context.Context) bool
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]datatypes.TechnologyMatch, error)
	Ingest(ctx context.Context, records []catalog.TechnologyRecord) (int, error)
}

// SolutionGenerator is the generation engine contract used by the generate
// handler. *generation.Engine implements it.
type SolutionGenerator interface {
	Generate(ctx context.Context, challenge datatypes.ChallengeInput,
		techs []datatypes.TechnologyMatch) ([]datatypes.Solution, error)
}
