// Package testing drives a mounted neon toggle through simulated pointer
// input and fake time.
//
// # Quick Start
//
//	func TestTapFlips(t *testing.T) {
//	    tester := neontest.NewTesterWithT(t)
//
//	    tester.Tap()
//	    if err := tester.PumpAndSettle(2 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if !tester.Binding().Value() {
//	        t.Error("expected the toggle to be on")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the control state and the painted display operations:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/on.snapshot.json")
//
// Update snapshots with:
//
//	NEON_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import neontest "github.com/go-drift/neon/pkg/testing"
package testing
