package tui

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplayStreamsOutputLines(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	job, cmd := startSim("demo", t.TempDir(), "sh", []string{"-c", "echo alpha; echo beta"})
	require.Equal(t, "demo", job.project)

	var lines []string
	for {
		switch message := cmd().(type) {
		case simStartedMsg:
			require.Equal(t, "demo", message.project)
		case simLineMsg:
			lines = append(lines, message.line)
		case simFinishedMsg:
			if message.err != nil {
				t.Skipf("pty unavailable: %v", message.err)
			}
		case simClosedMsg:
			joined := strings.Join(lines, "\n")
			require.Contains(t, joined, "alpha")
			require.Contains(t, joined, "beta")
			return
		}
		cmd = waitForSimMsg(job.ch)
	}
}

func TestReplayCancelStopsProcess(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	job, cmd := startSim("demo", t.TempDir(), "sh", []string{"-c", "sleep 30"})
	job.cancel()

	sawFinish := false
	for {
		switch message := cmd().(type) {
		case simFinishedMsg:
			if message.err == nil {
				t.Skip("process was not interrupted; pty shims vary")
			}
			sawFinish = true
		case simClosedMsg:
			require.True(t, sawFinish)
			return
		}
		cmd = waitForSimMsg(job.ch)
	}
}
