package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. args documents the expected arguments.
type command struct {
	name string
	args string
	help string
	run  func(ctx context.Context, args []string) error
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	commands() []command
}

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches it to the matching entry of a.commands(). The table is
// rebuilt for every line because it depends on who is signed in. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Command errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("qs %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(a.commands())
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := lookup(a.commands(), name)
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}

		if err := cmd.run(ctx, args); err != nil {
			printlnFn("Error:", describe(cmd, err))
		}
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(cmds []command) {
	printlnFn("Available commands:")
	for _, c := range cmds {
		usage := c.name
		if c.args != "" {
			usage += " " + c.args
		}
		printlnFn(fmt.Sprintf("  %-40s %s", usage, c.help))
	}
	printlnFn(fmt.Sprintf("  %-40s %s", "exit", "leave the program"))
}

// describe prefers the server's message over transport detail.
func describe(cmd command, err error) string {
	if errors.Is(err, errUsage) {
		return fmt.Sprintf("%v (usage: %s %s)", err, cmd.name, cmd.args)
	}
	return client.MessageOf(err, err.Error())
}
