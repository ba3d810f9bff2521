package ports

// Environment exposes the execution environment facts the command generator depends on.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// CI reports whether a known continuous-integration context is active.
	CI() bool
	// ColorsDisabled reports whether coloured output has been turned off.
	ColorsDisabled() bool
}
