// Package wave hands finished simulation traces to the external waveform
// viewer and answers cheap questions about a trace without interpreting it.
package wave

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hdlbench/hdlbench/internal/runner"
)

var (
	ErrArtifactMissing = errors.New("trace file missing")
	ErrArtifactEmpty   = errors.New("trace file empty")
)

// Launcher opens trace files in the configured viewer. The viewer runs
// detached; the launcher never learns when its window closes.
type Launcher struct {
	viewer string
	runner runner.Runner
}

func NewLauncher(r runner.Runner, viewer string) *Launcher {
	return &Launcher{viewer: viewer, runner: r}
}

// View launches the viewer on artifactPath. The artifact must exist and be
// non-empty; an empty file means the compiler wrote a placeholder but the
// simulation never dumped anything worth looking at.
func (l *Launcher) View(artifactPath string) error {
	info, err := os.Stat(artifactPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", artifactPath, ErrArtifactMissing)
	}
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s: %w", artifactPath, ErrArtifactEmpty)
	}
	return l.runner.Start(runner.Spec{
		Name: l.viewer,
		Args: []string{artifactPath},
		Dir:  filepath.Dir(artifactPath),
	})
}

// Info holds display-only stats read from a trace header. Signal values are
// never interpreted here; rendering belongs to the viewer.
type Info struct {
	Timescale   string
	SignalCount int
	MaxTime     uint64
}

func (i Info) String() string {
	ts := i.Timescale
	if ts == "" {
		ts = "?"
	}
	return fmt.Sprintf("%d signals, timescale %s, last change #%d", i.SignalCount, ts, i.MaxTime)
}

// Probe scans a VCD file for its timescale, declared signal count, and the
// largest time marker. Timescale directives may carry their value inline or
// on the following lines, so both shapes are accepted.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	var (
		info        Info
		inTimescale bool
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch {
		case inTimescale:
			info.Timescale += strings.TrimSpace(strings.TrimSuffix(line, "$end"))
			if strings.HasSuffix(line, "$end") {
				inTimescale = false
			}
		case strings.HasPrefix(line, "$timescale"):
			rest := strings.TrimSpace(strings.TrimPrefix(line, "$timescale"))
			if strings.HasSuffix(rest, "$end") {
				info.Timescale = strings.TrimSpace(strings.TrimSuffix(rest, "$end"))
			} else {
				info.Timescale = rest
				inTimescale = true
			}
		case strings.HasPrefix(line, "$var"):
			info.SignalCount++
		case strings.HasPrefix(line, "#"):
			if t, err := strconv.ParseUint(line[1:], 10, 64); err == nil && t > info.MaxTime {
				info.MaxTime = t
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Info{}, err
	}
	return info, nil
}
