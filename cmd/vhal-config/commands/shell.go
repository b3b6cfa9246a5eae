package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
	"github.com/rpi-demonstrator/vhal-go/pkg/inspect"
)

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell <file.json>",
		Short: "Explore a compiled configuration interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			table, err := e.loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "vhal> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			sh := &shell{
				insp:     inspect.NewInspector(table, e.loader.VendorRegistry()),
				registry: e.loader.VendorRegistry(),
				out:      rl.Stdout(),
			}
			return sh.run(cmd.Context(), rl)
		},
	}
}

// shell is the interactive inspector loop.
type shell struct {
	insp     *inspect.Inspector
	registry *constants.Registry
	out      io.Writer
}

func (s *shell) run(ctx context.Context, rl *readline.Instance) error {
	s.printHelp()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}

		if !s.exec(line) {
			return nil
		}
	}
}

// exec runs one command line. It returns false when the shell should exit.
func (s *shell) exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls":
		fmt.Fprint(s.out, s.insp.FormatList())

	case "show", "s":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: show <property>")
			return true
		}
		for _, q := range args {
			text, err := s.insp.Show(q)
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
				continue
			}
			fmt.Fprint(s.out, text)
		}

	case "resolve", "r":
		for _, ref := range args {
			v, err := s.insp.ResolveConstant(ref)
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(s.out, "%s = %#x (%d)\n", ref, v, v)
		}

	case "tags":
		for _, tag := range s.registry.Tags() {
			fmt.Fprintln(s.out, tag)
		}

	case "names":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: names <Type>")
			return true
		}
		entries := s.registry.Entries(args[0])
		if len(entries) == 0 {
			fmt.Fprintf(s.out, "no entries for %s\n", args[0])
			return true
		}
		for _, e := range entries {
			fmt.Fprintf(s.out, "%-50s %#x\n", e.Name, e.Value)
		}

	case "summary":
		fmt.Fprint(s.out, s.insp.Summary())

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  list                - One line per property
  show <property>...  - Print declarations (name, Type::Name or id)
  resolve <ref>...    - Resolve Type::Name constant references
  tags                - List registered type tags
  names <Type>        - List the names registered under a tag
  summary             - Count properties per group and type
  quit                - Exit`)
}
