package engines

import (
	"path/filepath"

	"github.com/agentx-labs/autolaunch/internal/platform"
)

// fileArtifact is the shared persistence of the file-backed engines: one
// file in one directory, present iff enabled.
type fileArtifact struct {
	dir  string
	name string
}

func (f fileArtifact) path() string {
	return filepath.Join(f.dir, f.name)
}

func (f fileArtifact) write(content []byte) error {
	if err := platform.EnsureDir(f.dir); err != nil {
		return err
	}
	return platform.WriteFile(f.path(), content)
}

func (f fileArtifact) remove() error {
	return platform.RemoveIfExists(f.path())
}

func (f fileArtifact) exists() (bool, error) {
	return platform.Exists(f.path())
}
