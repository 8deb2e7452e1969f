// firebench runs a surface and crown fire scenario from the command line and
// prints the predicted behavior, optionally exporting the run to a
// spreadsheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/firesci/firebehave/internal/constants"
	"github.com/firesci/firebehave/internal/log"
	"github.com/firesci/firebehave/pkg/behave"
	"github.com/firesci/firebehave/pkg/crown"
	"github.com/firesci/firebehave/pkg/surface"
	"github.com/firesci/firebehave/pkg/units"
)

func main() {
	var (
		fuelModel     int
		moisture1h    float64
		moisture10h   float64
		moisture100h  float64
		moistureHerb  float64
		moistureWoody float64
		windMph       float64
		windHeight    string
		windDir       float64
		slopePct      float64
		aspect        float64

		canopyCoverPct float64
		canopyHeight   float64
		crownRatio     float64

		runCrown       bool
		canopyBase     float64
		bulkDensity    float64
		foliarMoisture float64

		xlsxPath    string
		debug       bool
		logFile     string
		showVersion bool
	)

	flag.IntVar(&fuelModel, "fuel", 1, "fuel model number (1-13, 101-204)")
	flag.Float64Var(&moisture1h, "m1", 6, "1-hour dead fuel moisture (percent)")
	flag.Float64Var(&moisture10h, "m10", 7, "10-hour dead fuel moisture (percent)")
	flag.Float64Var(&moisture100h, "m100", 8, "100-hour dead fuel moisture (percent)")
	flag.Float64Var(&moistureHerb, "mherb", 60, "live herbaceous moisture (percent)")
	flag.Float64Var(&moistureWoody, "mwoody", 90, "live woody moisture (percent)")
	flag.Float64Var(&windMph, "wind", 5, "wind speed (mi/h)")
	flag.StringVar(&windHeight, "wind-height", "20ft", "wind reference height: midflame, 20ft or 10m")
	flag.Float64Var(&windDir, "wind-dir", 0, "wind direction relative to upslope (degrees)")
	flag.Float64Var(&slopePct, "slope", 0, "slope steepness (percent)")
	flag.Float64Var(&aspect, "aspect", 0, "aspect, direction the slope faces (degrees)")
	flag.Float64Var(&canopyCoverPct, "canopy-cover", 0, "canopy cover (percent)")
	flag.Float64Var(&canopyHeight, "canopy-height", 0, "canopy height (ft)")
	flag.Float64Var(&crownRatio, "crown-ratio", 0, "crown ratio (fraction)")
	flag.BoolVar(&runCrown, "crown", false, "also run the crown fire model")
	flag.Float64Var(&canopyBase, "canopy-base", 6, "canopy base height (ft)")
	flag.Float64Var(&bulkDensity, "bulk-density", 0.1, "canopy bulk density (kg/m³)")
	flag.Float64Var(&foliarMoisture, "foliar-moisture", 100, "foliar moisture (percent)")
	flag.StringVar(&xlsxPath, "xlsx", "", "write the run to this spreadsheet file")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.StringVar(&logFile, "log-file", "", "also log to this rotating file")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("firebench %s\n", constants.Version)
		return
	}

	var err error
	if logFile != "" {
		err = log.InitWithFile(logFile, debug)
	} else {
		err = log.Init(debug)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	mode, err := parseWindHeight(windHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	env := surface.Environment{
		MoistureOneHour:        units.MoisturePercent.ToBase(moisture1h),
		MoistureTenHour:        units.MoisturePercent.ToBase(moisture10h),
		MoistureHundredHour:    units.MoisturePercent.ToBase(moisture100h),
		MoistureLiveHerbaceous: units.MoisturePercent.ToBase(moistureHerb),
		MoistureLiveWoody:      units.MoisturePercent.ToBase(moistureWoody),
		WindSpeed:              units.MilesPerHour.ToBase(windMph),
		WindHeightMode:         mode,
		WindDirection:          windDir,
		Orientation:            surface.RelativeToUpslope,
		Slope:                  units.SlopePercent.ToBase(slopePct),
		Aspect:                 aspect,
		CanopyCover:            units.CoverPercent.ToBase(canopyCoverPct),
		CanopyHeight:           canopyHeight,
		CrownRatio:             crownRatio,
	}

	runID := uuid.New().String()
	log.Infow("starting run", "runID", runID, "fuelModel", fuelModel)

	runner := behave.NewRunner()
	sel := behave.StandardFuel(fuelModel)

	surfaceResult, err := runner.RunSurface(sel, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Surface Fire Behavior (run %s)\n", runID)
	fmt.Printf("  Spread Rate:        %.2f ch/h\n", units.ChainsPerHour.FromBase(surfaceResult.SpreadRate))
	fmt.Printf("  Direction of Max:   %.0f°\n", surfaceResult.DirectionOfMaxSpread)
	fmt.Printf("  Flame Length:       %.1f ft\n", surfaceResult.FlameLength)
	fmt.Printf("  Fireline Intensity: %.1f Btu/ft/s\n", surfaceResult.FirelineIntensity)
	fmt.Printf("  Heat per Unit Area: %.1f Btu/ft²\n", surfaceResult.HeatPerUnitArea)
	fmt.Printf("  Reaction Intensity: %.1f Btu/ft²/min\n", surfaceResult.ReactionIntensity)
	fmt.Printf("  Length-to-Width:    %.2f\n", surfaceResult.LengthToWidthRatio)
	if surfaceResult.WindSpeedLimitExceeded {
		fmt.Printf("  Note: effective wind speed limit reached\n")
	}

	var crownResult crown.Result
	if runCrown {
		in := crown.Inputs{
			CanopyBaseHeight:  canopyBase,
			CanopyBulkDensity: units.KilogramsPerCubicMeter.ToBase(bulkDensity),
			FoliarMoisture:    units.MoisturePercent.ToBase(foliarMoisture),
		}
		_, crownResult, err = runner.RunCrown(sel, env, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nCrown Fire Behavior\n")
		fmt.Printf("  Fire Type:          %s\n", crownResult.FireType)
		fmt.Printf("  Spread Rate:        %.2f ch/h\n", units.ChainsPerHour.FromBase(crownResult.SpreadRate))
		fmt.Printf("  Flame Length:       %.1f ft\n", crownResult.FlameLength)
		fmt.Printf("  Fireline Intensity: %.1f Btu/ft/s\n", crownResult.FirelineIntensity)
		fmt.Printf("  Transition Ratio:   %.2f\n", crownResult.TransitionRatio)
		fmt.Printf("  Active Ratio:       %.2f\n", crownResult.ActiveRatio)
		fmt.Printf("  Power of Fire:      %.2f ft·lb/s/ft²\n", crownResult.PowerOfFire)
		fmt.Printf("  Power of Wind:      %.2f ft·lb/s/ft²\n", crownResult.PowerOfWind)
	}

	if xlsxPath != "" {
		if err := exportXLSX(xlsxPath, runID, fuelModel, surfaceResult, runCrown, crownResult); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing spreadsheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", xlsxPath)
	}
}

func parseWindHeight(s string) (surface.WindHeightMode, error) {
	switch s {
	case "midflame":
		return surface.DirectMidflame, nil
	case "20ft":
		return surface.TwentyFoot, nil
	case "10m":
		return surface.TenMeter, nil
	default:
		return 0, fmt.Errorf("unknown wind reference height %q (want midflame, 20ft or 10m)", s)
	}
}

func exportXLSX(path, runID string, fuelModel int, sr surface.Result, withCrown bool, cr crown.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Run"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Run ID", runID},
		{"Fuel Model", fuelModel},
		{"Surface Spread Rate (ch/h)", units.ChainsPerHour.FromBase(sr.SpreadRate)},
		{"Direction of Max Spread (deg)", sr.DirectionOfMaxSpread},
		{"Flame Length (ft)", sr.FlameLength},
		{"Fireline Intensity (Btu/ft/s)", sr.FirelineIntensity},
		{"Heat per Unit Area (Btu/ft2)", sr.HeatPerUnitArea},
		{"Reaction Intensity (Btu/ft2/min)", sr.ReactionIntensity},
		{"Length-to-Width Ratio", sr.LengthToWidthRatio},
		{"Backing Spread Rate (ch/h)", units.ChainsPerHour.FromBase(sr.BackingSpreadRate)},
	}
	if withCrown {
		rows = append(rows,
			[]interface{}{"Crown Fire Type", cr.FireType.String()},
			[]interface{}{"Crown Spread Rate (ch/h)", units.ChainsPerHour.FromBase(cr.SpreadRate)},
			[]interface{}{"Crown Flame Length (ft)", cr.FlameLength},
			[]interface{}{"Transition Ratio", cr.TransitionRatio},
			[]interface{}{"Active Ratio", cr.ActiveRatio},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
