package cmd

import (
	"errors"
	"fmt"

	"github.com/nibzard/tasklist/internal/task"
	"github.com/nibzard/tasklist/internal/ui"
)

func (a *app) importCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: tasklist import <path>")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	if !store.ImportFrom(args[0]) {
		if err := store.LastErr(); err != nil {
			return fmt.Errorf("%s %w", ui.MsgImportFailed, err)
		}
		return fmt.Errorf("%s %s does not exist", ui.MsgImportFailed, args[0])
	}
	fmt.Fprintln(a.streams.Out, ui.MsgImportOK)
	return nil
}

func (a *app) exportCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: tasklist export <path>")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	path := task.WithJSONExt(args[0])
	if !store.ExportTo(path) {
		return fmt.Errorf("%s %w", ui.MsgExportFailed, store.LastErr())
	}
	fmt.Fprintln(a.streams.Out, ui.MsgExportOK)
	return nil
}

func (a *app) validateCommand(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	path := a.cfg.Config.TasksFile
	if len(args) == 1 {
		path = args[0]
	}

	result, err := task.ValidateFile(path)
	if err != nil {
		return err
	}

	out := a.streams.Out
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %v\n", e)
		}
		return fmt.Errorf("%s is invalid (%d errors)", path, len(result.Errors))
	}
	fmt.Fprintf(out, "%s: valid\n", path)
	return nil
}
