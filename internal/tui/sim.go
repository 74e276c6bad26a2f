package tui

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
)

// simJob is the one outstanding replay: a re-run of the simulation runtime
// under a pty so $display and $monitor output streams in line by line. The
// replay never touches project status; it exists to be watched.
type simJob struct {
	project string
	cancel  context.CancelFunc
	ch      chan simMsg
}

func startSim(project, dir, command string, args []string) (*simJob, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	job := &simJob{project: project, cancel: cancel, ch: make(chan simMsg, 64)}
	go runSim(ctx, job, dir, command, args)
	return job, waitForSimMsg(job.ch)
}

func runSim(ctx context.Context, job *simJob, dir, command string, args []string) {
	defer close(job.ch)

	job.ch <- simStartedMsg{project: job.project}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	ptmx, err := pty.Start(cmd)
	if err != nil {
		job.ch <- simFinishedMsg{project: job.project, err: err}
		return
	}
	defer ptmx.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(ptmx)
		for scanner.Scan() {
			// pty output is CRLF terminated
			line := strings.TrimRight(scanner.Text(), "\r")
			job.ch <- simLineMsg{project: job.project, line: line}
		}
	}()

	wg.Wait()
	err = cmd.Wait()
	job.ch <- simFinishedMsg{project: job.project, err: err}
}

// waitForSimMsg delivers one replay message per command; the handler re-arms
// it until the channel closes.
func waitForSimMsg(ch <-chan simMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return simClosedMsg{}
		}
		return msg
	}
}
