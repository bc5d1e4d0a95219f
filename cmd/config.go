package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/nibzard/tasklist/internal/config"
)

func (a *app) configCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	out := a.streams.Out
	file := a.cfg.GetConfigFile()
	if file == "" {
		file = "none"
	}
	fmt.Fprintf(out, "Config file: %s\n\n", file)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, field := range config.Fields() {
		value := a.cfg.Config.Value(field)
		if value == "" {
			value = `""`
		}
		fmt.Fprintf(tw, "%s\t%s\t(%s)\n", field, value, a.cfg.Sources[field])
	}
	return tw.Flush()
}

func (a *app) initCommand(args []string) error {
	flags := a.newFlagSet("init")
	force := flags.Bool("force", false, "Overwrite an existing tasklist.toml")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	path := config.ProjectConfigNames[0]
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(a.streams.Out, "Wrote %s\n", path)
	return nil
}
