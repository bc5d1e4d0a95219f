// Command tasklist manages a to-do list stored in a JSON file.
package main

import (
	"os"

	"github.com/nibzard/tasklist/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
