package main

import (
	"fmt"
	"os"

	"github.com/quelim/quelim/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	dump     bool
	modeName string
)

var rootCmd = &cobra.Command{
	Use:   "quelim FILE",
	Short: "Decide satisfiability of a QDIMACS formula by variable elimination",
	Long: `quelim reads a formula in QDIMACS format (plain DIMACS CNF is the
quantifier-free subset) and decides whether it is satisfiable, printing SAT
or UNSAT. It produces no model, only the verdict.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log elimination progress")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "print the parsed formula in QDIMACS form instead of solving it")
	rootCmd.Flags().StringVar(&modeName, "mode", "quantified", "formula shapes to accept: propositional or quantified")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	var mode solver.Mode
	switch modeName {
	case "propositional":
		mode = solver.ModePropositional
	case "quantified":
		mode = solver.ModeQuantified
	default:
		return fmt.Errorf("unknown mode %q", modeName)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("could not open %q: %v", args[0], err)
	}
	defer f.Close()
	qd, err := solver.ParseQDIMACS(f)
	if err != nil {
		return fmt.Errorf("could not parse %q: %v", args[0], err)
	}
	if dump {
		fmt.Print(solver.NewFormula(qd).CNF())
		return nil
	}
	status, err := solver.Solve(qd, mode)
	if err != nil {
		return err
	}
	fmt.Println(status)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
