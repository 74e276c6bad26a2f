// Package project owns the on-disk representation of projects under a
// projects root and the in-memory metadata mirroring it. The canonical
// project list lives here; the session layer holds names, never copies.
package project

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Status tracks where a project is in the edit/compile/view cycle.
type Status string

const (
	StatusCreated       Status = "created"
	StatusEditing       Status = "editing"
	StatusCompiling     Status = "compiling"
	StatusCompiledOk    Status = "compiled-ok"
	StatusCompileFailed Status = "compile-failed"
	StatusViewing       Status = "viewing"
)

// Title returns the display form of a status.
func (s Status) Title() string {
	switch s {
	case StatusCreated:
		return "Created"
	case StatusEditing:
		return "Editing"
	case StatusCompiling:
		return "Compiling"
	case StatusCompiledOk:
		return "Compiled"
	case StatusCompileFailed:
		return "Compile failed"
	case StatusViewing:
		return "Viewing"
	}
	return string(s)
}

// Project is one named unit of work: a directory holding Verilog sources
// and, after a successful build, the simulation trace artifact.
type Project struct {
	Name         string
	RootPath     string
	SourceFiles  []string // absolute paths in creation order
	ArtifactPath string   // empty until a successful build
	Status       Status
	CreatedAt    time.Time
}

// ArtifactFile returns the deterministic trace path for the project.
// Deterministic naming means repeated builds overwrite rather than
// accumulate.
func (p *Project) ArtifactFile() string {
	return filepath.Join(p.RootPath, p.Name+".vcd")
}

// IntermediateFile returns the compiler's bytecode output path, the input
// to the simulation runtime.
func (p *Project) IntermediateFile() string {
	return filepath.Join(p.RootPath, p.Name+".vvp")
}

// ValidName reports whether name is usable as a project (and directory)
// name: alphanumerics, underscores, and hyphens, not starting with either
// symbol.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_") {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
