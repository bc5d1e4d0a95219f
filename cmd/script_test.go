package cmd

import (
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"tasklist": Main,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"taskid": cmdTaskID,
		},
	})
}

// cmdTaskID finds a task by text in a task file and stores its id in an env var.
func cmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TEXT VAR")
	}

	var items []struct {
		ID   int64  `json:"id"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(ts.ReadFile(args[0])), &items); err != nil {
		ts.Fatalf("parse task file: %v", err)
	}

	for _, item := range items {
		if item.Text == args[1] {
			ts.Setenv(args[2], strconv.FormatInt(item.ID, 10))
			return
		}
	}
	ts.Fatalf("task with text %q not found", args[1])
}
