package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mhess/twophase/internal/cube"
	"github.com/mhess/twophase/internal/tablecache"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the cached move/pruning tables",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build (or rebuild) the on-disk table cache",
	Long: `Construct the six move tables and four pruning tables from
scratch and write them to the table cache, overwriting any existing
cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			var err error
			path, err = tablecache.DefaultPath()
			if err != nil {
				return err
			}
		}

		store, err := tablecache.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		p := tea.NewProgram(newBuildModel(store))
		finalModel, err := p.Run()
		if err != nil {
			return err
		}
		if m, ok := finalModel.(*buildModel); ok && m.err != nil {
			return m.err
		}
		return nil
	},
}

var tablesInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the table cache location and whether it is populated",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := tablecache.DefaultPath()
		if err != nil {
			return err
		}
		store, err := tablecache.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		_, ok, err := store.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Cache path: %s\n", store.Path())
		if ok {
			fmt.Println("Status: built")
		} else {
			fmt.Println("Status: not built (run `cube tables build`)")
		}
		return nil
	},
}

func init() {
	tablesBuildCmd.Flags().String("path", "", "Cache database path (default: ~/.twophase/tables.db)")
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesInfoCmd)
}

var (
	buildTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	buildDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	buildPendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	buildErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var buildStages = []string{"move tables", "pruning tables", "saved to cache"}

type stageDoneMsg string
type buildErrMsg struct{ err error }
type buildDoneMsg struct{}

type buildModel struct {
	store     *tablecache.Store
	stageCh   chan string
	resultCh  chan error
	completed []string
	start     time.Time
	err       error
	done      bool
}

func newBuildModel(store *tablecache.Store) *buildModel {
	return &buildModel{
		store:    store,
		stageCh:  make(chan string),
		resultCh: make(chan error, 1),
		start:    time.Now(),
	}
}

func (m *buildModel) Init() tea.Cmd {
	return tea.Batch(m.startBuild, m.listenForStage)
}

// startBuild launches the build in a goroutine and returns
// immediately; progress and completion arrive as messages via
// listenForStage, since the build stages run as plain function calls
// rather than as tea.Cmds. The tables are always built from scratch
// and saved, replacing any cached copy.
func (m *buildModel) startBuild() tea.Msg {
	go func() {
		mt := cube.BuildMoveTables()
		m.stageCh <- "move tables"
		pt := cube.BuildPruningTables(mt)
		m.stageCh <- "pruning tables"
		err := m.store.Save(&cube.Tables{Move: mt, Prune: pt})
		if err == nil {
			m.stageCh <- "saved to cache"
		}
		close(m.stageCh)
		m.resultCh <- err
	}()
	return nil
}

// listenForStage blocks for the next stage-completion message, or
// for final build result once stageCh is closed. Update re-issues
// this command after every stageDoneMsg to keep listening.
func (m *buildModel) listenForStage() tea.Msg {
	stage, ok := <-m.stageCh
	if !ok {
		if err := <-m.resultCh; err != nil {
			return buildErrMsg{err}
		}
		return buildDoneMsg{}
	}
	return stageDoneMsg(stage)
}

func (m *buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case stageDoneMsg:
		m.completed = append(m.completed, string(msg))
		return m, m.listenForStage
	case buildErrMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case buildDoneMsg:
		m.completed = buildStages
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *buildModel) View() string {
	s := buildTitleStyle.Render("Building two-phase solver tables") + "\n\n"
	for _, stage := range buildStages {
		found := false
		for _, c := range m.completed {
			if c == stage {
				found = true
				break
			}
		}
		if found {
			s += buildDoneStyle.Render("[done] "+stage) + "\n"
		} else {
			s += buildPendStyle.Render("[....] "+stage) + "\n"
		}
	}
	if m.err != nil {
		s += "\n" + buildErrStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	if m.done {
		s += "\n" + buildDoneStyle.Render(fmt.Sprintf("finished in %v", time.Since(m.start)))
	}
	return s
}
