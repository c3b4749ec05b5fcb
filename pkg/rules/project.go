package rules

import (
	"github.com/dkoosis/checkup/pkg/scan"
)

// Project is the complete scan inventory handed to whole-project rules. It
// must only be built after scanning finishes; project rules depend on seeing
// the full file set, never a partial one.
type Project struct {
	Root  string
	Files []scan.FileInfo

	read func(scan.FileInfo) ([]byte, error)
}

// NewProject builds an inventory over the given files. The read function
// supplies file content on demand so the whole tree never has to be held in
// memory at once.
func NewProject(root string, files []scan.FileInfo, read func(scan.FileInfo) ([]byte, error)) *Project {
	return &Project{Root: root, Files: files, read: read}
}

// Content returns the file's text. An error means the file is unreadable or
// binary; content rules exclude such files and carry on.
func (p *Project) Content(f scan.FileInfo) ([]byte, error) {
	return p.read(f)
}
