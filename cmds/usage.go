package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.usageTo(os.Stdout, nil)
}

func (p *Executor) usageTo(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "error: %v\n\n", err)
	}
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer and are listed with the primary name
	seen := make(map[*Command]bool)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		if slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				arg := "<" + command.argName(i) + ">"
				if command.Func.Type().In(i).Kind() == reflect.Pointer {
					arg = "[" + arg + "]"
				}
				line += " " + arg
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
