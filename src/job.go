package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Robogera/tseries/pkg/config"
	"github.com/Robogera/tseries/pkg/enums"
	"github.com/Robogera/tseries/pkg/lazy"
	"github.com/Robogera/tseries/pkg/timeseries"
)

type series = timeseries.TimeSeries[float64]

// Smooths args[0] with window kwargs["window"], 0 passes it through
func smoothStep(args []any, kwargs map[string]any) (any, error) {
	ts, ok := args[0].(*series)
	if !ok {
		return nil, fmt.Errorf("smooth: got %T: %w", args[0], lazy.ERR_TYPE)
	}
	window, _ := kwargs["window"].(uint)
	if window == 0 {
		return ts, nil
	}
	return ts.Smooth(window)
}

// Resamples args[0] at query times args[1] with kwargs["method"]
func resampleStep(args []any, kwargs map[string]any) (any, error) {
	ts, ok := args[0].(*series)
	if !ok {
		return nil, fmt.Errorf("resample: got %T: %w", args[0], lazy.ERR_TYPE)
	}
	query, _ := args[1].([]float64)
	method, ok := kwargs["method"].(enums.Method)
	if !ok {
		method = enums.MethodLinear
	}
	return ts.InterpolateWith(query, method)
}

// Builds the deferred smooth -> resample pipeline over ts
func pipeline(ts *series, cfg config.SeriesConfig, method enums.Method) *lazy.Node {
	smoothed := lazy.NewNode(smoothStep, lazy.Lazy(ts.Lazy())).
		With("window", lazy.Val(cfg.Smooth))
	return lazy.NewNode(resampleStep, lazy.Lazy(smoothed), lazy.Val(cfg.QueryTimes())).
		With("method", lazy.Val(method))
}

func job(ctx context.Context, parent_logger *slog.Logger, cfg config.SeriesConfig) error {
	logger := parent_logger.With("job", cfg.Name)

	ts, err := timeseries.New(cfg.Times, cfg.Values)
	if err != nil {
		logger.Error("Can't build series", "error", err)
		return fmt.Errorf("Series %q: %w", cfg.Name, err)
	}
	if !ts.IsSorted() {
		logger.Warn("Times are not sorted, interpolation results are undefined")
	}
	logger.Debug("Loaded", "series", ts)

	if summary, err := ts.Summary(); err == nil {
		logger.Info("Summary",
			"samples", summary.Size,
			"mean", summary.Mean,
			"median", summary.Median,
			"std dev", summary.StdDev,
			"min", summary.Min,
			"max", summary.Max)
	} else {
		logger.Warn("No summary", "error", err)
	}

	if ctx.Err() != nil {
		logger.Info("Job cancelled by context")
		return ERR_CANCELLED_BY_CONTEXT
	}

	method, _ := enums.ParseMethod(cfg.Method)
	resampled, err := lazy.Eval[*series](pipeline(ts, cfg, method))
	if err != nil {
		logger.Error("Can't resample", "method", method, "error", err)
		return fmt.Errorf("Series %q: %w", cfg.Name, err)
	}

	logger.Info("Resampled", "method", method, "smooth", cfg.Smooth, "result", resampled)
	for t, v := range resampled.IterItems() {
		logger.Debug("Sample", "time", t, "value", v)
	}
	return nil
}
