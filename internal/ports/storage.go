package ports

// SnapshotStore persists the directory→filenames snapshot between daemon
// runs. The snapshot is a warm-start cache only: it lets queries answer
// before the first scan completes and is fully replaced by every merge.
//
// Crash safety: SaveSnapshot must be transactional. A crash mid-write must
// not corrupt a previously committed snapshot.
type SnapshotStore interface {
	// SaveSnapshot persists the full dir→names mapping for a project.
	// Overwrites any prior snapshot for this projectID.
	SaveSnapshot(projectID string, dirs map[string][]string) error

	// LoadSnapshot retrieves the snapshot for a project.
	// Returns nil, nil if no snapshot exists (fresh project).
	LoadSnapshot(projectID string) (map[string][]string, error)

	// DeleteProject removes all data for a project.
	// Idempotent: deleting a nonexistent project is not an error.
	DeleteProject(projectID string) error
}
