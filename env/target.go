package env

// Target is the execution context an Env is built for.
type Target int

const (
	TargetServer Target = iota
	TargetBrowser
)

func (t Target) String() string {
	switch t {
	case TargetServer:
		return "server"
	case TargetBrowser:
		return "browser"
	default:
		return "unknown"
	}
}

// DefaultTarget is the target of the current build.
func DefaultTarget() Target {
	return defaultTarget
}
