// Package testing provides helpers for testing layouts.
//
// # Probes
//
// A [Probe] wraps any measurable and records how often it was queried and
// where it was placed:
//
//	p := stackstest.NewProbe(layout.FixedBox(10, 20))
//	col := stacks.NewColumn(stacks.Center, p)
//	col.PlaceIn(bounds, proposal)
//	p.Origin // where the column put it
//
// # Snapshot Testing
//
// Capture the placed tree of a container and compare it with a golden file:
//
//	snapshot := stackstest.CaptureSnapshot(col)
//	snapshot.MatchesFile(t, "testdata/toolbar.snapshot.json")
//
// Update snapshots with:
//
//	STACKS_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import stackstest "github.com/go-drift/stacks/pkg/testing"
package testing
