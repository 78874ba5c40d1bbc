// Command nstreectl is an interactive shell over a single in-memory
// nstree.Tree: it reads one command per line from stdin and prints its
// result, for manual exploration and for scripting quick repros of the
// scenarios covered by the package's own tests.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nstree/nstree"
	"github.com/nstree/nstree/nslog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nstreectl",
	Short: "Drive an in-memory nstree namespace from a line-oriented shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		var log nslog.Log = nslog.NoLog{}
		if verbose {
			log = nslog.Default()
		}
		tree := nstree.New(log)
		defer tree.Close()

		scanner := bufio.NewScanner(cmd.InOrStdin())
		writer := bufio.NewWriter(cmd.OutOrStdout())
		return runShell(tree, scanner, writer)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"log every call, return, and traversal step",
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runShell is the actual REPL loop: it drives the tree it is given and
// never returns until stdin is exhausted or a "quit" or "exit" line is
// read.
func runShell(tree *nstree.Tree, r *bufio.Scanner, w *bufio.Writer) error {
	defer w.Flush()
	for r.Scan() {
		line := strings.TrimSpace(r.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil
		case "list":
			if len(args) != 1 {
				fmt.Fprintln(w, "usage: list <path>")
				continue
			}
			listing, code := tree.List(args[0])
			if code != nstree.OK {
				fmt.Fprintln(w, code)
				continue
			}
			fmt.Fprintln(w, listing)
		case "create":
			if len(args) != 1 {
				fmt.Fprintln(w, "usage: create <path>")
				continue
			}
			fmt.Fprintln(w, tree.Create(args[0]))
		case "remove":
			if len(args) != 1 {
				fmt.Fprintln(w, "usage: remove <path>")
				continue
			}
			fmt.Fprintln(w, tree.Remove(args[0]))
		case "move":
			if len(args) != 2 {
				fmt.Fprintln(w, "usage: move <source> <target>")
				continue
			}
			fmt.Fprintln(w, tree.Move(args[0], args[1]))
		default:
			fmt.Fprintf(w, "unknown command %q\n", cmd)
		}
		w.Flush()
	}
	return errors.Wrap(r.Err(), "reading command")
}
