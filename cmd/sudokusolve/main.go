package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/parse"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

var log = logrus.New()

// classicBoard is the well-known sample puzzle, used when no board file is
// given.
const classicBoard = `
5 3 . . 7 . . . .
6 . . 1 9 5 . . .
. 9 8 . . . . 6 .
8 . . . 6 . . . 3
4 . . 8 . 3 . . 1
7 . . . 2 . . . 6
. 6 . . . . 2 8 .
. . . 4 1 9 . . 5
. . . . 8 . . 7 9
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var levelStr string
	root := &cobra.Command{
		Use:          "sudokusolve",
		Short:        "Solve 9x9 sudoku puzzles by constrained backtracking",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl := logrus.InfoLevel
			switch strings.ToLower(levelStr) {
			case "debug":
				lvl = logrus.DebugLevel
			case "warn":
				lvl = logrus.WarnLevel
			case "error":
				lvl = logrus.ErrorLevel
			}
			log.SetLevel(lvl)
			log.SetOutput(os.Stderr)
		},
	}
	root.PersistentFlags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newSolveCmd(), newCheckCmd())
	return root
}

// newService wires validator -> solver -> use cases, as a larger deployment
// would at startup.
func newService() *usecase.Service {
	v := validator.New()
	s := solver.NewBacktracking(v)
	return usecase.NewService(s, v)
}

func newSolveCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a board and print the completed grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readBoard(file)
			if err != nil {
				return err
			}
			out, st, err := newService().Solve(cmd.Context(), g)
			if err != nil {
				if errors.Is(err, solver.ErrNoSolution) {
					log.WithFields(logrus.Fields{
						"nodes": st.Nodes,
						"dur":   st.Duration,
					}).Warn("search exhausted")
				}
				return err
			}
			log.WithFields(logrus.Fields{
				"nodes": st.Nodes,
				"dur":   st.Duration,
			}).Info("solved")
			fmt.Print(render(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", `board file ("-" for stdin; default: built-in sample)`)
	return cmd
}

func newCheckCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a board for row/column/block conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readBoard(file)
			if err != nil {
				return err
			}
			ok, conflicts, err := newService().Validate(cmd.Context(), g)
			if err != nil {
				return err
			}
			if !ok {
				for _, c := range conflicts {
					fmt.Printf("%s %d contains a duplicate digit\n", c.Kind, c.Index)
				}
				return fmt.Errorf("board is not valid")
			}
			fmt.Println("board is valid")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", `board file ("-" for stdin; default: built-in sample)`)
	return cmd
}

func readBoard(file string) (domain.Grid, error) {
	switch file {
	case "":
		log.Debug("no board file given, using the built-in sample")
		return parse.Board(classicBoard)
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return domain.Grid{}, err
		}
		return parse.Board(string(data))
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return domain.Grid{}, err
		}
		return parse.Board(string(data))
	}
}

func render(g domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString("------+-------+------\n")
		}
		row := g.Row(r)
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteString("| ")
			}
			b.WriteString(row[c].String())
			if c != 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
