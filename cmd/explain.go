package cmd

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/problemgen"
	"github.com/abhisek/limitz/internal/solution"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print the worked solution for one problem",
	Long: `Print the step-by-step solution of lim (x → -1) √((x+1)/(x²+cx+b)).

Pick the problem either with --a, or with --c and --b. The coefficients must
satisfy c = a²+2 and b = c-1 for some integer a ≥ 2.`,
	Example: `  limitz explain --a 7
  limitz explain --c 51 --b 50 --format markdown`,
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().Int64("a", 0, "Answer denominator (a ≥ 2)")
	explainCmd.Flags().Int64("b", 0, "Constant term of the quadratic")
	explainCmd.Flags().Int64("c", 0, "Linear coefficient of the quadratic")
	explainCmd.Flags().String("format", "text", "Output format: text or markdown")
}

func runExplain(cmd *cobra.Command, args []string) error {
	a, _ := cmd.Flags().GetInt64("a")
	b, _ := cmd.Flags().GetInt64("b")
	c, _ := cmd.Flags().GetInt64("c")
	format, _ := cmd.Flags().GetString("format")

	p, err := resolveProblem(a, b, c, cmd.Flags().Changed("a"), cmd.Flags().Changed("b"), cmd.Flags().Changed("c"))
	if err != nil {
		return err
	}
	return writeExplanation(cmd.OutOrStdout(), p, format)
}

// resolveProblem builds a validated problem from either a or the (c, b) pair.
// A missing b defaults to c-1.
func resolveProblem(a, b, c int64, hasA, hasB, hasC bool) (problemgen.Problem, error) {
	switch {
	case hasA && (hasB || hasC):
		return problemgen.Problem{}, errors.New("use either --a or --c/--b, not both")
	case hasA:
		p, err := problemgen.NewProblem(a)
		if err != nil {
			return problemgen.Problem{}, err
		}
		return p, validateProblem(p)
	case hasC:
		if !hasB {
			b = c - 1
		}
		p := problemgen.Problem{A: isqrt(c - 2), B: b, C: c}
		if err := validateProblem(p); err != nil {
			return problemgen.Problem{}, err
		}
		return p, nil
	case hasB:
		return problemgen.Problem{}, errors.New("--b needs --c")
	}
	return problemgen.Problem{}, errors.New("one of --a or --c is required")
}

func validateProblem(p problemgen.Problem) error {
	if err := problemgen.Validate(p, problemgen.DefaultConfig().Validators); err != nil {
		return fmt.Errorf("not a valid problem: %w", err)
	}
	return nil
}

func writeExplanation(w io.Writer, p problemgen.Problem, format string) error {
	switch format {
	case "text":
		fmt.Fprintf(w, "%s\n\n", p.Limit())
		_, err := io.WriteString(w, solution.Render(p.B, p.C, p.A))
		return err
	case "markdown", "md":
		_, err := io.WriteString(w, solution.RenderMarkdown(p.B, p.C, p.A))
		return err
	}
	return fmt.Errorf("invalid format %q: must be text or markdown", format)
}

// isqrt returns the integer square root of n, or 0 for n < 0.
func isqrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	// Compare by division so squaring never overflows near MaxInt64.
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
