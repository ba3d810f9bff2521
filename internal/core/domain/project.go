package domain

// Project describes the workspace or project xcodebuild operates on.
type Project struct {
	// Parameters holds ready-to-use xcodebuild tokens such as "-workspace 'App.xcworkspace'".
	Parameters []string
	// AppName names the application, used for log file naming.
	AppName string
}

// Empty reports whether no workspace or project could be resolved.
func (p *Project) Empty() bool {
	return p == nil || len(p.Parameters) == 0
}
