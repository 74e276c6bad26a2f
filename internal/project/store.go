package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Store integrity errors, reported inline by callers; never retried.
var (
	ErrDuplicateName = errors.New("project already exists")
	ErrNotFound      = errors.New("project not found")
	ErrInvalidName   = errors.New("invalid project name")
)

// Store owns the canonical project list for one projects root. It must be
// used from a single goroutine; build workers receive value snapshots and
// report back through messages, never through the Store.
type Store struct {
	root     string
	registry *registry
	projects []*Project
	index    map[string]*Project
}

// Open ensures the projects root exists, opens its registry, and loads the
// known projects in creation order, adopting directories created outside
// the tool. Failure here is the one fatal startup condition.
func Open(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("projects root: %w", err)
	}
	reg, err := openRegistry(root)
	if err != nil {
		return nil, fmt.Errorf("projects registry: %w", err)
	}
	s := &Store{root: root, registry: reg, index: make(map[string]*Project)}
	if err := s.Refresh(); err != nil {
		_ = reg.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the registry handle.
func (s *Store) Close() error {
	return s.registry.Close()
}

// Root returns the projects root directory.
func (s *Store) Root() string {
	return s.root
}

// Create validates the name, writes the project directory and scaffold
// files, and registers the project with status Created.
func (s *Store) Create(name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if !ValidName(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	if _, ok := s.index[name]; ok {
		return nil, fmt.Errorf("%s: %w", name, ErrDuplicateName)
	}
	dir := filepath.Join(s.root, name)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrDuplicateName)
	}

	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, err
	}
	now := time.Now()
	sources, err := scaffoldFiles(name, dir, now)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Add(name, dir, now); err != nil {
		return nil, err
	}

	p := &Project{
		Name:        name,
		RootPath:    dir,
		SourceFiles: sources,
		Status:      StatusCreated,
		CreatedAt:   now,
	}
	s.projects = append(s.projects, p)
	s.index[name] = p
	return p, nil
}

// List returns all known projects in creation order.
func (s *Store) List() []*Project {
	out := make([]*Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Get looks a project up by name.
func (s *Store) Get(name string) (*Project, error) {
	p, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return p, nil
}

// Open looks a project up and re-synchronizes it against the directory's
// actual contents: the source file set and the artifact's freshness are
// re-derived from disk, so projects touched outside the tool stay honest.
// A registered project whose directory vanished is dropped and reported as
// not found.
func (s *Store) Open(name string) (*Project, error) {
	p, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(p.RootPath); err != nil || !info.IsDir() {
		s.drop(name)
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	s.syncProject(p)
	return p, nil
}

// Delete removes the project directory recursively and deregisters the
// project. Irreversible; there is no soft-delete.
func (s *Store) Delete(name string) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(p.RootPath); err != nil {
		return err
	}
	s.drop(name)
	return nil
}

// RecordSourceEdit marks a project as edited: build eligibility is cleared
// and must be re-proven by the next compile. The artifact file on disk is
// kept; the deterministic output path overwrites it on the next success.
func (s *Store) RecordSourceEdit(name string) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	p.SourceFiles = verilogSources(p.RootPath)
	p.ArtifactPath = ""
	p.Status = StatusEditing
	return nil
}

// SetStatus updates a project's status.
func (s *Store) SetStatus(name string, status Status) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	p.Status = status
	return nil
}

// ApplyBuild records a compile outcome. A non-empty artifactPath means
// success.
func (s *Store) ApplyBuild(name, artifactPath string) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	if artifactPath != "" {
		p.ArtifactPath = artifactPath
		p.Status = StatusCompiledOk
	} else {
		p.ArtifactPath = ""
		p.Status = StatusCompileFailed
	}
	return nil
}

// Clean removes the generated intermediate and artifact files and re-syncs
// the project.
func (s *Store) Clean(name string) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	for _, path := range []string{p.IntermediateFile(), p.ArtifactFile()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	s.syncProject(p)
	return nil
}

// Refresh reconciles the in-memory list with the registry and the projects
// root: registrations whose directories vanished are dropped, directories
// containing Verilog sources that appeared outside the tool are adopted.
// Known projects keep their in-memory state (an in-flight compile status
// survives a refresh).
func (s *Store) Refresh() error {
	rows, err := s.registry.List()
	if err != nil {
		return err
	}

	projects := make([]*Project, 0, len(rows))
	index := make(map[string]*Project, len(rows))
	for _, row := range rows {
		info, err := os.Stat(row.Path)
		if err != nil || !info.IsDir() {
			_ = s.registry.Remove(row.Name)
			continue
		}
		p, ok := s.index[row.Name]
		if !ok {
			p = &Project{Name: row.Name, RootPath: row.Path, Status: StatusCreated, CreatedAt: row.CreatedAt}
			s.syncProject(p)
		}
		projects = append(projects, p)
		index[row.Name] = p
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return err
	}
	var adopted []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, ok := index[entry.Name()]; ok {
			continue
		}
		if len(verilogSources(filepath.Join(s.root, entry.Name()))) == 0 {
			continue
		}
		adopted = append(adopted, entry.Name())
	}
	sort.Strings(adopted)
	for _, name := range adopted {
		path := filepath.Join(s.root, name)
		now := time.Now()
		if err := s.registry.Add(name, path, now); err != nil {
			return err
		}
		p := &Project{Name: name, RootPath: path, Status: StatusCreated, CreatedAt: now}
		s.syncProject(p)
		projects = append(projects, p)
		index[name] = p
	}

	s.projects = projects
	s.index = index
	return nil
}

// Stats summarizes a project directory for display.
type Stats struct {
	FileCount    int
	TotalSize    int64
	LastModified time.Time
}

// Stats collects the display summary for one project.
func (s *Store) Stats(name string) (Stats, error) {
	p, err := s.Get(name)
	if err != nil {
		return Stats{}, err
	}
	entries, err := os.ReadDir(p.RootPath)
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		st.FileCount++
		st.TotalSize += info.Size()
		if info.ModTime().After(st.LastModified) {
			st.LastModified = info.ModTime()
		}
	}
	return st, nil
}

func (s *Store) drop(name string) {
	delete(s.index, name)
	for i, p := range s.projects {
		if p.Name == name {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			break
		}
	}
	_ = s.registry.Remove(name)
}

// syncProject re-reads the source set and re-derives artifact freshness.
// The artifact counts only when it exists, is non-empty, and is at least as
// new as every source file.
func (s *Store) syncProject(p *Project) {
	p.SourceFiles = verilogSources(p.RootPath)
	artifact := p.ArtifactFile()
	if isFreshArtifact(artifact, p.SourceFiles) {
		p.ArtifactPath = artifact
		if p.Status != StatusViewing {
			p.Status = StatusCompiledOk
		}
	} else {
		p.ArtifactPath = ""
		if p.Status == StatusCompiledOk || p.Status == StatusViewing {
			p.Status = StatusCreated
		}
	}
}

// verilogSources lists the .v files directly inside dir, sorted by name.
// Name order keeps main.v ahead of main_test.v, preserving scaffold order.
func verilogSources(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".v" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files
}

func isFreshArtifact(artifact string, sources []string) bool {
	info, err := os.Stat(artifact)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return false
	}
	if len(sources) == 0 {
		return false
	}
	for _, src := range sources {
		srcInfo, err := os.Stat(src)
		if err != nil {
			return false
		}
		if srcInfo.ModTime().After(info.ModTime()) {
			return false
		}
	}
	return true
}
