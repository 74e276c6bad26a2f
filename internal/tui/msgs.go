package tui

import "github.com/hdlbench/hdlbench/internal/build"

// buildFinishedMsg carries a compile worker's outcome back to the event
// loop. Exactly one is sent per worker, even when the context is cancelled.
type buildFinishedMsg struct {
	project string
	result  *build.Result
	err     error
}

// editorFinishedMsg re-enters the loop after the suspended editor session
// returns control of the terminal.
type editorFinishedMsg struct {
	project string
	editor  string
	err     error
}

// simMsg is the stream of events produced by a replay job.
type simMsg interface {
	isSim()
}

type simStartedMsg struct {
	project string
}

func (simStartedMsg) isSim() {}

type simLineMsg struct {
	project string
	line    string
}

func (simLineMsg) isSim() {}

type simFinishedMsg struct {
	project string
	err     error
}

func (simFinishedMsg) isSim() {}

// simClosedMsg marks the end of a replay stream; the channel is closed and
// the pump must stop re-arming.
type simClosedMsg struct{}

func (simClosedMsg) isSim() {}
