package trace

// Destination selects where event log lines are written.
type Destination string

const (
	// DestScreen writes lines to standard output only (the default).
	DestScreen Destination = "screen"
	// DestFile writes lines to the configured log file only.
	DestFile Destination = "file"
	// DestBoth writes lines to standard output and the log file.
	DestBoth Destination = "both"
)

// validDestinations maps accepted destination strings.
var validDestinations = map[Destination]bool{
	DestScreen: true,
	DestFile:   true,
	DestBoth:   true,
	"":         true, // empty defaults to screen
}

// IsValidDestination returns true if the given string is a recognized log destination.
func IsValidDestination(dest string) bool {
	return validDestinations[Destination(dest)]
}

// ParseDestination maps the config file's "Log:" line to a Destination.
// Anything other than the two recognized literals defaults to screen-only.
func ParseDestination(line string) Destination {
	switch line {
	case "Log to Both":
		return DestBoth
	case "Log to File":
		return DestFile
	default:
		return DestScreen
	}
}
