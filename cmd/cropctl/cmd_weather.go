package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/futig/crop-advisory/internal/builder"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <city>",
	Short: "Show current weather conditions for a city",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWeather,
}

func runWeather(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	services, zl, err := builder.BuildCLI(ctx, envName)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	ctx = logger.ToContext(ctx, zl)

	w, err := services.Weather.Current(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, %s\n", w.City, w.Country)
	fmt.Fprintf(out, "  %s, %.0f°C (feels like %.0f°C)\n", w.Condition, math.Round(w.TempC), math.Round(w.FeelsLikeC))
	fmt.Fprintf(out, "  humidity %d%%, wind %.1f km/h %s\n", w.HumidityPct, w.WindKph, w.WindDir)
	fmt.Fprintf(out, "  visibility %.1f km, pressure %.0f mb, UV %.1f\n", w.VisibilityKm, w.PressureMb, w.UV)
	return nil
}
