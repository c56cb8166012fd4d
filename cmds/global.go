package cmds

import "os"

// GlobalExecutor holds commands defined by package init functions.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		GlobalExecutor.usageTo(os.Stderr, err)
		os.Exit(2)
	}
}
