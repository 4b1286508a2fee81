package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/qmerino/vleq/rachford"
	"github.com/qmerino/vleq/rootfind"
)

func newFlashCommand() *cobra.Command {
	var (
		z         []float64
		k         []float64
		v0        float64
		tol       float64
		maxIter   int
		check     bool
		bracketed bool
	)

	cmd := &cobra.Command{
		Use:   "flash",
		Short: "Solve the Rachford-Rice equation for the vapor fraction",
		Long: `Solve the Rachford-Rice equation for the equilibrium vapor fraction V
of a feed described by mole fractions (--z) and equilibrium ratios (--k).

By default the plain Newton-Raphson iteration runs from --v0. With
--bracketed, a safeguarded Newton confined to the two-phase window
(1/(1-Kmax), 1/(1-Kmin)) is used instead; it cannot overshoot the
window's poles but requires K values straddling 1.`,
		Example: `  # Four-component flash from the default guess V0=0
  vleq flash --z 0.1,0.2,0.3,0.4 --k 4.2,1.75,0.74,0.34

  # Tighter tolerance, verify the residual, contained iteration
  vleq flash --z 0.1,0.2,0.3,0.4 --k 4.2,1.75,0.74,0.34 \
      --tol 1e-9 --check --bracketed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rachford.NewFlashProblem(z, k)
			if err != nil {
				return err
			}

			log.Debug().
				Floats64("z", z).
				Floats64("k", k).
				Float64("v0", v0).
				Float64("tol", tol).
				Int("max_iter", maxIter).
				Bool("bracketed", bracketed).
				Msg("Solving Rachford-Rice")

			opts := []rootfind.Option{
				rootfind.WithTolerance(tol),
				rootfind.WithMaxIter(maxIter),
			}

			var v float64
			if bracketed {
				lo, hi := p.TwoPhaseWindow()
				if lo >= hi {
					return fmt.Errorf("no two-phase window for this K set: K values must straddle 1")
				}
				// Nudge off the endpoints: they are poles of the objective.
				eps := (hi - lo) * 1e-9
				v, err = rootfind.SafeguardedNewton(p.Objective, p.Derivative, lo+eps, hi-eps, opts...)
			} else {
				v, err = rachford.SolveVaporFraction(p, v0, opts...)
			}
			if err != nil {
				// Typed failures get a hint; recovery policy stays with the user.
				switch {
				case errors.Is(err, rootfind.ErrDerivativeTooSmall):
					log.Warn().Msg("Derivative vanished mid-iteration; try a different --v0 or --bracketed")
				case errors.Is(err, rootfind.ErrNoConvergence):
					log.Warn().Msg("Iteration budget exhausted; try --bracketed or raise --max-iter")
				}

				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "V = %.10g\n", v)
			if check {
				fmt.Fprintf(cmd.OutOrStdout(), "objective(V) = %.3e\n", math.Abs(p.Objective(v)))
			}

			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&z, "z", nil, "feed mole fractions, one per component (required)")
	cmd.Flags().Float64SliceVar(&k, "k", nil, "equilibrium ratios, one per component (required)")
	cmd.Flags().Float64Var(&v0, "v0", 0, "initial guess for the vapor fraction")
	cmd.Flags().Float64Var(&tol, "tol", rootfind.DefaultTolerance, "convergence tolerance on the step size")
	cmd.Flags().IntVar(&maxIter, "max-iter", rootfind.DefaultMaxIter, "iteration budget")
	cmd.Flags().BoolVar(&check, "check", false, "re-evaluate the objective at the root and print the residual")
	cmd.Flags().BoolVar(&bracketed, "bracketed", false, "confine the iteration to the two-phase window")
	_ = cmd.MarkFlagRequired("z")
	_ = cmd.MarkFlagRequired("k")

	return cmd
}
