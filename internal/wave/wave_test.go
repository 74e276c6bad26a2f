package wave

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hdlbench/hdlbench/internal/runner"
)

const sampleVCD = `$date today $end
$version sim $end
$timescale 1ns $end
$scope module counter_tb $end
$var wire 1 ! clk $end
$var wire 1 " rst $end
$var wire 8 # count $end
$upscope $end
$enddefinitions $end
#0
0!
1"
b00000000 #
#5
1!
#10
0!
b00000001 #
`

func writeTrace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counter.vcd")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestViewLaunchesViewerDetached(t *testing.T) {
	mock := runner.NewMockRunner()
	path := writeTrace(t, sampleVCD)

	l := NewLauncher(mock, "gtkwave")
	require.NoError(t, l.View(path))

	starts := mock.Starts()
	require.Len(t, starts, 1)
	require.Equal(t, "gtkwave", starts[0].Name)
	require.Equal(t, []string{path}, starts[0].Args)
	require.Equal(t, filepath.Dir(path), starts[0].Dir)
	require.Empty(t, mock.Runs())
}

func TestViewMissingArtifact(t *testing.T) {
	mock := runner.NewMockRunner()

	l := NewLauncher(mock, "gtkwave")
	err := l.View(filepath.Join(t.TempDir(), "never-built.vcd"))
	require.ErrorIs(t, err, ErrArtifactMissing)
	require.Empty(t, mock.Starts())
}

func TestViewEmptyArtifact(t *testing.T) {
	mock := runner.NewMockRunner()
	path := writeTrace(t, "")

	l := NewLauncher(mock, "gtkwave")
	err := l.View(path)
	require.ErrorIs(t, err, ErrArtifactEmpty)
	require.Empty(t, mock.Starts())
}

func TestViewReportsSpawnFailure(t *testing.T) {
	mock := runner.NewMockRunner()
	mock.StartErr = errors.New("gtkwave: display unavailable")
	path := writeTrace(t, sampleVCD)

	l := NewLauncher(mock, "gtkwave")
	require.ErrorContains(t, l.View(path), "display unavailable")
}

func TestProbeReadsHeader(t *testing.T) {
	path := writeTrace(t, sampleVCD)

	info, err := Probe(path)
	require.NoError(t, err)
	require.Equal(t, "1ns", info.Timescale)
	require.Equal(t, 3, info.SignalCount)
	require.Equal(t, uint64(10), info.MaxTime)
	require.Equal(t, "3 signals, timescale 1ns, last change #10", info.String())
}

func TestProbeMultilineTimescale(t *testing.T) {
	path := writeTrace(t, "$timescale\n\t10ps\n$end\n$var wire 1 ! clk $end\n#0\n#42\n")

	info, err := Probe(path)
	require.NoError(t, err)
	require.Equal(t, "10ps", info.Timescale)
	require.Equal(t, 1, info.SignalCount)
	require.Equal(t, uint64(42), info.MaxTime)
}

func TestProbeMissingFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "gone.vcd"))
	require.Error(t, err)
}
