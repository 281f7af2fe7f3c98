package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .qando/ project
// directory. All fields are pre-computed strings.
type Paths struct {
	Root  string // .qando/
	DB    string // .qando/qando.db
	Build string // .qando/build.json

	LogDir  string // .qando/log/
	LogFile string // .qando/log/qando.log
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".qando")
	return &Paths{
		Root:  root,
		DB:    filepath.Join(root, "qando.db"),
		Build: filepath.Join(root, "build.json"),

		LogDir:  filepath.Join(root, "log"),
		LogFile: filepath.Join(root, "log", "qando.log"),
	}
}

// EnsureDirs creates all subdirectories under .qando/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.Root, p.LogDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
