package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	years     int
	monthly   float64
	rate      float64
	inflation float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "forecast the portfolio value with monthly contributions" }
func (*projectCmd) Usage() string {
	return `pft project [-y <years>] [-m <monthly>] [-r <annual return>] [-i <inflation>]

  Projects the current value compounded at the portfolio XIRR, plus a monthly
  contribution, over a horizon of years. When the XIRR is not positive, the
  fallback return of the configuration is used. The future value is also
  expressed in today's purchasing power.

  Rates are fractions: 0.12 is 12%.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "y", 0, "Horizon in years (defaults to the configuration)")
	f.Float64Var(&c.monthly, "m", -1, "Monthly contribution (defaults to the configuration)")
	f.Float64Var(&c.rate, "r", 0, "Expected annual return, replaces the XIRR")
	f.Float64Var(&c.inflation, "i", -1, "Annual inflation rate (defaults to the configuration)")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	years := cfg.Projection.Years
	if c.years > 0 {
		years = c.years
	}
	monthly := cfg.Projection.Monthly
	if c.monthly >= 0 {
		monthly = c.monthly
	}
	a := folio.Assumptions{
		InflationRate:  cfg.Projection.InflationRate,
		FallbackReturn: cfg.Projection.FallbackReturn,
	}
	if c.inflation >= 0 {
		a.InflationRate = c.inflation
	}

	var projection folio.Projection
	contribution := folio.M(monthly, cfg.Currency)
	if c.rate != 0 {
		a.AnnualReturn = c.rate
		projection = folio.NewProjection(p.Summary(time.Now()).TotalValue, contribution, years, a)
	} else {
		projection = p.Projection(time.Now(), contribution, years, a)
	}
	if projection.UsedFallback {
		logger.Info().Float64("fallback", a.FallbackReturn).Msg("return is not positive, using the fallback return")
	}
	printMarkdown(renderer.ProjectionMarkdown(projection, renderOptions(cfg)))
	return subcommands.ExitSuccess
}
