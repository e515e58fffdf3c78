package cmd

import (
	"flag"

	"github.com/etnz/folio"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictDimension = predict.Set{"sector", "company", "asset type", "broker"}
	predictOrder     = predict.Set{"name", "value", "pnl", "weight"}
	predictPeriod    = predict.Set{folio.Yearly.String(), folio.Monthly.String()}
	predictCommand   = predict.Set{string(folio.CmdBuy), string(folio.CmdSell)}
	predictDate      = predict.Set{"0d", "-1d", "-1w", "-1m", "-1y"}
	predictLevel     = predict.Set{"trace", "debug", "info", "warn", "error"}
)

// Completion describes the pft command line for shell completion.
func Completion() *complete.Command {
	trade := map[string]complete.Predictor{
		"d": predictDate,
		"s": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
		"c": predict.Something,
		"b": predict.Something,
	}
	edit := map[string]complete.Predictor{"t": predictCommand}
	for k, v := range trade {
		edit[k] = v
	}

	return &complete.Command{
		Flags: globalFlags(),
		Sub: map[string]*complete.Command{
			"buy":          {Flags: trade},
			"sell":         {Flags: trade},
			"edit":         {Flags: edit, Args: predict.Something},
			"rm":           {Args: predict.Something},
			"fmt":          {},
			"transactions": {Flags: map[string]complete.Predictor{"s": predictDate, "d": predictDate, "symbol": predict.Something, "head": predict.Something, "tail": predict.Something}},
			"holdings":     {Flags: map[string]complete.Predictor{"s": predict.Something}},
			"summary":      {Flags: map[string]complete.Predictor{"d": predictDate}},
			"allocation":   {Flags: map[string]complete.Predictor{"by": predictDimension, "sort": predictOrder}},
			"analysis":     {Flags: map[string]complete.Predictor{"p": predictPeriod, "by": predictDimension}},
			"health":       {Flags: map[string]complete.Predictor{"d": predictDate}},
			"project":      {Flags: map[string]complete.Predictor{"y": predict.Something, "m": predict.Something, "r": predict.Something, "i": predict.Something}},
			"insights":     {},
			"fetch":        {Flags: map[string]complete.Predictor{"all": predict.Nothing, "timeout": predict.Something}, Args: predict.Something},
			"help":         {},
			"flags":        {},
			"commands":     {},
		},
	}
}

// globalFlags predicts the top-level flags.
func globalFlags() map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	flag.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = predict.Something
	})
	flags["config"] = predict.Files("*.toml")
	flags["ledger-file"] = predict.Files("*.jsonl")
	flags["quotes-file"] = predict.Files("*.json")
	flags["privacy"] = predict.Nothing
	flags["codes"] = predict.Nothing
	flags["log-level"] = predictLevel
	return flags
}
