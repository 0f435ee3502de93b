// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. The app core depends
// only on these interfaces, never on concrete implementations.
package ports

// Class is the category a Classifier assigns to a path.
type Class int

const (
	// Filtered paths are excluded entirely: not indexed, not descended into.
	Filtered Class = iota
	// Directory paths may be descended into during a scan.
	Directory
	// File is a plain file that belongs to the project.
	File
	// Source is a recognized source file. Indexed the same way as File;
	// the distinction exists for callers that only care about code.
	Source
)

// String returns a human-readable representation of the class.
func (c Class) String() string {
	switch c {
	case Filtered:
		return "filtered"
	case Directory:
		return "directory"
	case File:
		return "file"
	case Source:
		return "source"
	default:
		return "unknown"
	}
}

// Classifier categorizes a path. Implementations must be deterministic and
// side-effect free: the same path with the same on-disk state always yields
// the same class. Consulted on every entry visited during a scan and on every
// watch event, possibly from multiple goroutines concurrently.
type Classifier interface {
	Classify(path string) Class
}
