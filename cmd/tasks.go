package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/tasklist/internal/task"
)

// dateLayout is how creation dates are listed.
const dateLayout = "2006-01-02 15:04"

// clearPrompt is asked before clearing unless -y is given or confirm is off.
const clearPrompt = "Are you sure you want to clear all tasks? [y/n] "

func (a *app) addCommand(args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return errors.New("task text is empty")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	added := store.Add(text)
	if err := checkSaved(store); err != nil {
		return err
	}
	fmt.Fprintf(a.streams.Out, "Added %d: %s\n", added.ID, added.Text)
	return nil
}

func (a *app) lsCommand(args []string) error {
	fs := a.newFlagSet("ls")
	asJSON := fs.Bool("json", false, "Print the tasks as JSON")
	pending := fs.Bool("pending", false, "Only pending tasks")
	completed := fs.Bool("completed", false, "Only completed tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *pending && *completed {
		return errors.New("-pending and -completed are mutually exclusive")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}

	tasks := filterTasks(store.ListAll(), *pending, *completed)
	if *asJSON {
		data, err := task.Encode(tasks)
		if err != nil {
			return err
		}
		_, err = a.streams.Out.Write(data)
		return err
	}

	printTaskList(a.streams.Out, tasks)
	fmt.Fprintln(a.streams.Out)
	fmt.Fprintln(a.streams.Out, store.Stats())
	return nil
}

func filterTasks(tasks []task.Task, pending, completed bool) []task.Task {
	if !pending && !completed {
		return tasks
	}
	filtered := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if (pending && !t.Completed) || (completed && t.Completed) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func printTaskList(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	for i, t := range tasks {
		fmt.Fprintf(w, "%d. %s\n", i+1, formatTask(t))
	}
}

func formatTask(t task.Task) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	created := "-"
	if !t.CreatedAt.IsZero() {
		created = t.CreatedAt.Format(dateLayout)
	}
	return fmt.Sprintf("%s %d  %s  %s", check, t.ID, created, t.Text)
}

func (a *app) toggleCommand(args []string) error {
	id, err := singleID("toggle", args)
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	if !store.ToggleStatus(id) {
		return fmt.Errorf("no task with id %d", id)
	}
	if err := checkSaved(store); err != nil {
		return err
	}
	t, _ := store.Get(id)
	fmt.Fprintln(a.streams.Out, t)
	return nil
}

func (a *app) rmCommand(args []string) error {
	id, err := singleID("rm", args)
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	t, ok := store.Get(id)
	if !ok || !store.Delete(id) {
		return fmt.Errorf("no task with id %d", id)
	}
	if err := checkSaved(store); err != nil {
		return err
	}
	fmt.Fprintf(a.streams.Out, "Deleted %d: %s\n", t.ID, t.Text)
	return nil
}

func (a *app) clearCommand(args []string) error {
	fs := a.newFlagSet("clear")
	yes := fs.Bool("y", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}

	if a.cfg.Config.Confirm && !*yes {
		ok, err := confirm(a.streams.In, a.streams.Out, clearPrompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.streams.Out, "Aborted.")
			return nil
		}
	}

	n := store.Clear()
	if err := checkSaved(store); err != nil {
		return err
	}
	fmt.Fprintf(a.streams.Out, "Cleared %d tasks.\n", n)
	return nil
}

func (a *app) statsCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.streams.Out, store.Stats())
	return nil
}

// confirm prints prompt and reads a yes or no answer from in.
// End of input counts as no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	if in == nil {
		fmt.Fprintln(out)
		return false, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	fmt.Fprintln(out)
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func singleID(name string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: tasklist %s <id>", name)
	}
	return parseID(args[0])
}
