package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// File implements a roster source backed by a YAML file.
//
// The file is re-read on every run, so edits between runs take effect
// without restarting. Expected layout:
//
//	projects:
//	  - alpha
//	  - beta
//	members:
//	  - name: ada
//	    ranks: [1, 2]
//	  - name: grace
//	    ranks: [2, 1]
type File struct {
	path string
}

var _ types.RosterSource = (*File)(nil)

// rosterFile is the on-disk YAML layout.
type rosterFile struct {
	Projects []string           `yaml:"projects"`
	Members  []types.Submission `yaml:"members"`
}

// NewFile creates a roster source reading the given YAML file.
//
// Parameters:
//   - path: Path to the roster YAML file
//
// Returns:
//   - *File: Initialized file source (the file is not opened until a run)
func NewFile(path string) *File {
	return &File{path: path}
}

// ListProjects returns the project list from the file.
func (f *File) ListProjects(_ context.Context) ([]string, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	return doc.Projects, nil
}

// ListSubmissions returns the member submissions from the file.
func (f *File) ListSubmissions(_ context.Context) ([]types.Submission, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	return doc.Members, nil
}

func (f *File) load() (*rosterFile, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file %q: %w", f.path, err)
	}

	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing roster file %q: %w", f.path, err)
	}

	return &doc, nil
}
