package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopboard/shopboard/internal/schedremote"
)

// maxRunLog caps the progress lines kept on screen.
const maxRunLog = 8

type submitDoneMsg struct {
	jobID   string
	session *schedremote.PollSession
	err     error
}

type pollUpdateMsg struct {
	update schedremote.PollUpdate
	ok     bool
}

// runView submits the loaded tasks to the scheduling service and streams
// poll updates into the UI. At most one poll session is alive at a time;
// starting a new run cancels the previous session first.
type runView struct {
	state *SharedState

	spin spinner.Model
	bar  progress.Model

	session *schedremote.PollSession
	jobID   string
	running bool

	pct     float64
	log     []string
	errText string
}

func newRunView(state *SharedState) *runView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &runView{
		state: state,
		spin:  sp,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (v *runView) ID() ViewID    { return ViewRun }
func (v *runView) Title() string { return "Run" }

func (v *runView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run scheduler")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
	}
}

func (v *runView) Init() tea.Cmd { return v.spin.Tick }

func (v *runView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if !v.running {
				return v, v.startRun()
			}
		case "c":
			if v.session != nil {
				v.session.Cancel()
			}
		}
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case submitDoneMsg:
		if msg.err != nil {
			v.running = false
			v.errText = msg.err.Error()
			return v, nil
		}
		v.session = msg.session
		v.jobID = msg.jobID
		v.appendLog(fmt.Sprintf("job %s accepted", msg.jobID))
		return v, waitForUpdate(msg.session)

	case pollUpdateMsg:
		return v.onPollUpdate(msg)
	}

	return v, nil
}

// startRun cancels any previous session, then submits the current task
// batch and opens a fresh poll session off the update loop.
func (v *runView) startRun() tea.Cmd {
	if v.state.App.Store.Len() == 0 {
		v.errText = "no tasks loaded"
		return nil
	}
	if v.session != nil {
		v.session.Cancel()
		v.session = nil
	}

	v.running = true
	v.errText = ""
	v.pct = 0
	v.log = nil

	app := v.state.App
	req := buildSubmitRequest(app, app.Store.Tasks())

	return func() tea.Msg {
		jobID, err := app.Client.Submit(context.Background(), req)
		if err != nil {
			return submitDoneMsg{err: err}
		}
		session := schedremote.NewPollSession(app.Client, jobID, app.Cfg.Service.PollInterval())
		session.Start(context.Background())
		return submitDoneMsg{jobID: jobID, session: session}
	}
}

// waitForUpdate blocks on the session's update channel and feeds the next
// update back into the program.
func waitForUpdate(session *schedremote.PollSession) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-session.Updates()
		return pollUpdateMsg{update: u, ok: ok}
	}
}

func (v *runView) onPollUpdate(msg pollUpdateMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		// Channel closed, the session is finished.
		v.running = false
		v.session = nil
		return v, nil
	}

	u := msg.update
	switch {
	case u.Err != nil:
		v.errText = u.Err.Error()

	case u.Status.Status == schedremote.StatusError:
		v.errText = errorText(u.Status)

	case u.Status.Terminal():
		v.pct = 100
		v.appendLog("schedule complete")
		v.state.Result = u.Status.Result
		v.state.Rebuild()
		return v, tea.Batch(
			waitForUpdate(v.session),
			func() tea.Msg { return overridesChangedMsg{} },
		)

	default:
		v.pct = u.Status.Progress
		line := strings.TrimSpace(u.Status.Step + " " + u.Status.Message)
		if line != "" {
			v.appendLog(line)
		}
	}

	return v, waitForUpdate(v.session)
}

func (v *runView) appendLog(line string) {
	v.log = append(v.log, line)
	if len(v.log) > maxRunLog {
		v.log = v.log[len(v.log)-maxRunLog:]
	}
}

func (v *runView) View() string {
	var b strings.Builder

	n := v.state.App.Store.Len()
	b.WriteString(fmt.Sprintf("%d task(s) across %d project(s) loaded.\n\n", n, len(v.state.App.Store.Projects())))

	switch {
	case v.running:
		b.WriteString(v.spin.View() + " scheduling")
		if v.jobID != "" {
			b.WriteString(" job " + v.jobID)
		}
		b.WriteString("\n" + v.bar.ViewAs(v.pct/100) + "\n")
	case v.state.Result != nil:
		b.WriteString(onTimeBarStyle.Render("✓ schedule ready") + faintStyle.Render("  (press 1 for the dashboard, 2 for the timeline)") + "\n")
	default:
		b.WriteString(faintStyle.Render("Press r to run the scheduler.") + "\n")
	}

	if len(v.log) > 0 {
		b.WriteByte('\n')
		for _, line := range v.log {
			b.WriteString(faintStyle.Render(line) + "\n")
		}
	}
	if v.errText != "" {
		b.WriteString("\n" + errStyle.Render("error: "+v.errText) + "\n")
	}
	return b.String()
}
