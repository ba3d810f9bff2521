package domain

// RunMode selects which group of xcodebuild actions runs after an optional clean.
type RunMode int

const (
	// RunModeBuildAndTest builds (unless skipped) and then tests.
	RunModeBuildAndTest RunMode = iota
	// RunModeBuildForTesting only builds the test bundles.
	RunModeBuildForTesting
	// RunModeTestWithoutBuilding runs previously built test bundles.
	RunModeTestWithoutBuilding
)

// String returns a readable name for the mode.
func (m RunMode) String() string {
	switch m {
	case RunModeBuildForTesting:
		return "build-for-testing"
	case RunModeTestWithoutBuilding:
		return "test-without-building"
	case RunModeBuildAndTest:
		return "build-and-test"
	default:
		return "unknown"
	}
}

// RunMode derives the action group from the options.
// build_for_testing wins over test_without_building, which is implied by an xctestrun file.
func (o *Options) RunMode() RunMode {
	switch {
	case o.BuildForTesting:
		return RunModeBuildForTesting
	case o.TestWithoutBuilding || o.XCTestRun != "":
		return RunModeTestWithoutBuilding
	default:
		return RunModeBuildAndTest
	}
}
