package domain

import "path/filepath"

const (
	// TallyDirName is the name of the per-project state directory.
	TallyDirName = ".tally"

	// ClientIDFileName is the file holding the persisted client id.
	ClientIDFileName = "client.json"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tally.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultClientIDPath returns the client id file path relative to a project root.
func DefaultClientIDPath() string {
	return filepath.Join(TallyDirName, ClientIDFileName)
}
