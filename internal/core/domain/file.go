package domain

// RemoteFile references a file in the remote storage folder.
// It only lives for the duration of a run.
type RemoteFile struct {
	// ID is the storage provider's file identifier.
	ID string
	// Name is the display name, used as the local file name.
	Name string
}
