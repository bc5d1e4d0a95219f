// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nibzard/tasklist/internal/task"
)

// DateLayout is how creation dates are shown in the list.
const DateLayout = "2006-01-02 15:04"

// Messages shown after file operations.
const (
	MsgImportOK     = "Import tasks successfully."
	MsgImportFailed = "Import tasks failed."
	MsgExportOK     = "Export tasks successfully."
	MsgExportFailed = "Export tasks failed."
)

// ErrNotTTY is returned when the TUI is started without a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	confirm bool
	input   io.Reader
	output  io.Writer
}

// WithConfirm controls whether delete and clear ask first.
func WithConfirm(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.confirm = enabled
	}
}

// WithIO overrides the terminal used by the program.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI starts the TUI over store and blocks until the user quits.
func RunTUI(ctx context.Context, store *task.Store, opts ...TUIOption) error {
	c := &tuiConfig{
		confirm: true,
		input:   os.Stdin,
		output:  os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(c.output) {
		return ErrNotTTY
	}

	model := NewModel(store, c.confirm)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(c.input),
		tea.WithOutput(c.output),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeImport
	modeExport
	modeConfirmDelete
	modeConfirmClear
)

// Model is the bubbletea model for the task list.
type Model struct {
	store   *task.Store
	confirm bool

	tasks  []task.Task
	cursor int
	offset int
	height int

	mode      mode
	input     textinput.Model
	pendingID int64

	message    string
	messageErr bool
	showHelp   bool
	quitting   bool
}

// NewModel builds a model over store.
func NewModel(store *task.Store, confirm bool) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	m := &Model{
		store:   store,
		confirm: confirm,
		input:   input,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.height = size.Height
	}
	model, cmd := m.update(msg)
	m.scrollToCursor()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeAdd || m.mode == modeImport || m.mode == modeExport {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeImport, modeExport:
		return m.handleInputKey(key)
	case modeConfirmDelete, modeConfirmClear:
		return m.handleConfirmKey(key)
	}
	return m.handleListKey(key)
}

func (m *Model) handleListKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch key.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		default:
			m.showHelp = false
			return m, nil
		}
	}

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.tasks)-1, 0)
	case " ", "enter":
		if t, ok := m.selected(); ok {
			m.store.ToggleStatus(t.ID)
			m.refresh()
		}
	case "a":
		return m, m.startInput(modeAdd, "What needs to be done?")
	case "i":
		return m, m.startInput(modeImport, "Path to import from")
	case "e":
		return m, m.startInput(modeExport, "Path to export to")
	case "d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.confirm {
			m.pendingID = t.ID
			m.mode = modeConfirmDelete
			return m, nil
		}
		m.deleteTask(t.ID)
	case "c":
		if len(m.tasks) == 0 {
			return m, nil
		}
		if m.confirm {
			m.mode = modeConfirmClear
			return m, nil
		}
		m.clearTasks()
	}
	return m, nil
}

func (m *Model) handleInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.endInput()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		current := m.mode
		m.endInput()
		if value == "" {
			return m, nil
		}
		switch current {
		case modeAdd:
			m.addTask(value)
		case modeImport:
			m.importTasks(value)
		case modeExport:
			m.exportTasks(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		if m.mode == modeConfirmDelete {
			m.deleteTask(m.pendingID)
		} else {
			m.clearTasks()
		}
		m.mode = modeList
		m.pendingID = 0
	case "n", "N", "esc", "q":
		m.mode = modeList
		m.pendingID = 0
	}
	return m, nil
}

func (m *Model) startInput(next mode, placeholder string) tea.Cmd {
	m.mode = next
	m.message = ""
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = modeList
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) addTask(text string) {
	added := m.store.Add(text)
	m.refresh()
	for i, t := range m.tasks {
		if t.ID == added.ID {
			m.cursor = i
		}
	}
	m.setStoreMessage("")
}

func (m *Model) deleteTask(id int64) {
	m.store.Delete(id)
	m.refresh()
	m.setStoreMessage("")
}

func (m *Model) clearTasks() {
	m.store.Clear()
	m.refresh()
	m.setStoreMessage("")
}

func (m *Model) importTasks(path string) {
	ok := m.store.ImportFrom(path)
	m.refresh()
	m.cursor = 0
	if ok {
		m.setMessage(MsgImportOK, false)
		return
	}
	m.setMessage(MsgImportFailed, true)
}

func (m *Model) exportTasks(path string) {
	if m.store.ExportTo(task.WithJSONExt(path)) {
		m.setMessage(MsgExportOK, false)
		return
	}
	m.setMessage(MsgExportFailed, true)
}

// setStoreMessage surfaces the last persistence error, or shows fallback.
func (m *Model) setStoreMessage(fallback string) {
	if err := m.store.LastErr(); err != nil {
		m.setMessage("Saving failed: "+err.Error(), true)
		return
	}
	m.setMessage(fallback, false)
}

func (m *Model) setMessage(text string, isErr bool) {
	m.message = text
	m.messageErr = isErr
}

func (m *Model) refresh() {
	m.tasks = m.store.ListAll()
	if m.cursor >= len(m.tasks) {
		m.cursor = max(len(m.tasks)-1, 0)
	}
}

// chromeLines counts the rows View draws around the task list.
const chromeLines = 8

// visibleRows returns how many tasks fit on screen. Before the first
// WindowSizeMsg every task is shown.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return max(len(m.tasks), 1)
	}
	return max(m.height-chromeLines, 1)
}

// scrollToCursor moves the visible window so the cursor row stays on screen.
func (m *Model) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = min(m.offset, max(len(m.tasks)-rows, 0))
	m.offset = max(m.offset, 0)
}

func (m *Model) selected() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		b.WriteString(footerStyle.Render("Press any key to return"))
		b.WriteString("\n")
		return strings.TrimSuffix(b.String(), "\n")
	}

	writeTasks(&b, m.tasks, m.cursor, m.offset, m.visibleRows())
	b.WriteString(statusLineStyle.Render(m.store.Stats().String()))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		writePrompt(&b, "Add task: ", m.input.View())
	case modeImport:
		writePrompt(&b, "Import from: ", m.input.View())
	case modeExport:
		writePrompt(&b, "Export to: ", m.input.View())
	case modeConfirmDelete:
		text := ""
		if t, ok := m.store.Get(m.pendingID); ok {
			text = t.Text
		}
		b.WriteString(promptStyle.Render(fmt.Sprintf("Are you sure you want to delete the task \"%s\"? (y/n)", text)))
		b.WriteString("\n")
	case modeConfirmClear:
		b.WriteString(promptStyle.Render("Are you sure you want to clear all tasks? (y/n)"))
		b.WriteString("\n")
	default:
		if m.message != "" {
			style := statusSuccessStyle
			if m.messageErr {
				style = statusErrorStyle
			}
			b.WriteString(style.Render(m.message))
			b.WriteString("\n")
		}
		b.WriteString(footerStyle.Render("a add | space toggle | d delete | c clear | i import | e export | ? help | q quit"))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeTitle(b *strings.Builder) {
	title := "Todo List"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeTasks(b *strings.Builder, tasks []task.Task, cursor, offset, rows int) {
	if len(tasks) == 0 {
		b.WriteString("  No tasks yet. Press a to add one.\n\n")
		return
	}

	width := 0
	for _, t := range tasks {
		width = max(width, lipgloss.Width(t.Text))
	}

	end := min(offset+rows, len(tasks))
	for i := offset; i < end; i++ {
		b.WriteString(formatRow(tasks[i], i, i == cursor, width))
		b.WriteString("\n")
	}
	if offset > 0 || end < len(tasks) {
		b.WriteString(footerStyle.Render(fmt.Sprintf("  %d-%d of %d", offset+1, end, len(tasks))))
	}
	b.WriteString("\n")
}

func formatRow(t task.Task, index int, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	text := t.Text + strings.Repeat(" ", width-lipgloss.Width(t.Text))
	date := ""
	if !t.CreatedAt.IsZero() {
		date = t.CreatedAt.Format(DateLayout)
	}

	line := fmt.Sprintf("%s%s %s  %s", marker, check, text, dateStyle.Render(date))
	switch {
	case selected:
		return selectedStyle.Render(line)
	case t.Completed:
		return completedStyle.Render(line)
	case index%2 == 1:
		return rowAltStyle.Render(line)
	default:
		return rowStyle.Render(line)
	}
}

func writePrompt(b *strings.Builder, label, input string) {
	b.WriteString(promptStyle.Render(label))
	b.WriteString(input)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter confirm | esc cancel"))
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  up, k        Move up\n")
	b.WriteString("  down, j      Move down\n")
	b.WriteString("  g, G         Jump to first or last task\n")
	b.WriteString("  space, enter Toggle the selected task\n")
	b.WriteString("  a            Add a task\n")
	b.WriteString("  d            Delete the selected task\n")
	b.WriteString("  c            Clear all tasks\n")
	b.WriteString("  i            Import tasks from a file\n")
	b.WriteString("  e            Export tasks to a file\n")
	b.WriteString("  ?            Show this help\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
