package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/ostat/internal/btree"
)

var (
	promptColor = color.New(color.FgCyan)
	valueColor  = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

// shellCmd starts an interactive session against a fresh tree, handy
// for exploring the structure by hand.
var shellCmd = &cobra.Command{
	Use:   "shell <min-degree>",
	Short: "Interactive session against an empty tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minDegree, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("min-degree must be an integer: %q", args[0])
		}
		tree, err := btree.New(minDegree)
		if err != nil {
			return err
		}

		sh := &shell{
			tree: tree,
			in:   bufio.NewScanner(cmd.InOrStdin()),
			out:  cmd.OutOrStdout(),
		}
		sh.loop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

type shell struct {
	tree *btree.Tree
	in   *bufio.Scanner
	out  io.Writer
}

func (s *shell) loop() {
	s.printHelp()
	s.prompt()
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line != "" {
			if quit := s.dispatch(line); quit {
				return
			}
		}
		s.prompt()
	}
}

func (s *shell) prompt() {
	promptColor.Fprint(s.out, "ostat> ")
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  insert <key>        Insert a key (duplicates ignored)
  delete <key>        Delete a key (absent keys ignored)
  search <key>        Test membership
  select <k>          k-th smallest key
  rank <key>          1-based rank of a key
  range <lo> <hi>     Keys in [lo, hi]
  primes <lo> <hi>    Prime keys in [lo, hi]
  size                Number of stored keys
  height              Tree height
  help                Show this help
  exit                Leave the shell`)
}

// dispatch runs one shell command; it reports whether the session
// should end.
func (s *shell) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "insert":
		if k, ok := s.keyArg(args); ok {
			if err := s.tree.Insert(k); err != nil {
				errorColor.Fprintln(s.out, err)
			} else {
				valueColor.Fprintf(s.out, "ok (%d keys)\n", s.tree.Len())
			}
		}
	case "delete":
		if k, ok := s.keyArg(args); ok {
			s.tree.Delete(k)
			valueColor.Fprintf(s.out, "ok (%d keys)\n", s.tree.Len())
		}
	case "search":
		if k, ok := s.keyArg(args); ok {
			valueColor.Fprintln(s.out, s.tree.Contains(k))
		}
	case "select":
		if len(args) != 1 {
			s.usage("select <k>")
			break
		}
		k, err := strconv.Atoi(args[0])
		if err != nil {
			s.usage("select <k>")
			break
		}
		if key, ok := s.tree.Select(k); ok {
			valueColor.Fprintln(s.out, key)
		} else {
			errorColor.Fprintln(s.out, "out of range")
		}
	case "rank":
		if k, ok := s.keyArg(args); ok {
			if rank, found := s.tree.Rank(k); found {
				valueColor.Fprintln(s.out, rank)
			} else {
				errorColor.Fprintln(s.out, "not found")
			}
		}
	case "range":
		if lo, hi, ok := s.rangeArgs(args); ok {
			s.printKeys(s.tree.RangeKeys(lo, hi))
		}
	case "primes":
		if lo, hi, ok := s.rangeArgs(args); ok {
			s.printKeys(s.tree.RangePrimes(lo, hi))
		}
	case "size":
		valueColor.Fprintln(s.out, s.tree.Len())
	case "height":
		valueColor.Fprintln(s.out, s.tree.Height())
	case "help":
		s.printHelp()
	case "exit", "quit":
		return true
	default:
		errorColor.Fprintf(s.out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

func (s *shell) keyArg(args []string) (btree.Key, bool) {
	if len(args) != 1 {
		s.usage("expected exactly one key")
		return 0, false
	}
	k, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		errorColor.Fprintf(s.out, "not a valid key: %q\n", args[0])
		return 0, false
	}
	return k, true
}

func (s *shell) rangeArgs(args []string) (lo, hi btree.Key, ok bool) {
	if len(args) != 2 {
		s.usage("expected <lo> <hi>")
		return 0, 0, false
	}
	lo, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		errorColor.Fprintf(s.out, "not a valid bound: %q\n", args[0])
		return 0, 0, false
	}
	hi, err = strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		errorColor.Fprintf(s.out, "not a valid bound: %q\n", args[1])
		return 0, 0, false
	}
	return lo, hi, true
}

func (s *shell) printKeys(keys []btree.Key) {
	if len(keys) == 0 {
		errorColor.Fprintln(s.out, "none")
		return
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.FormatUint(k, 10)
	}
	valueColor.Fprintln(s.out, strings.Join(parts, " "))
}

func (s *shell) usage(msg string) {
	errorColor.Fprintln(s.out, msg)
}
