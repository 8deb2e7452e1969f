package crown

import (
	"errors"
	"math"
	"testing"

	"github.com/firesci/firebehave/pkg/fuel"
	"github.com/firesci/firebehave/pkg/surface"
	"github.com/firesci/firebehave/pkg/units"
)

func crownEnv() surface.Environment {
	return surface.Environment{
		MoistureOneHour:        0.06,
		MoistureTenHour:        0.07,
		MoistureHundredHour:    0.08,
		MoistureLiveHerbaceous: 0.60,
		MoistureLiveWoody:      0.90,
		WindSpeed:              units.MilesPerHour.ToBase(15.0),
		WindHeightMode:         surface.TwentyFoot,
		CanopyHeight:           60.0,
	}
}

func crownInputs() Inputs {
	return Inputs{
		CanopyBaseHeight:  6.0,
		CanopyBulkDensity: units.KilogramsPerCubicMeter.ToBase(0.12),
		FoliarMoisture:    1.0,
	}
}

func runSurface(t *testing.T, c *fuel.Catalog, env surface.Environment) surface.Result {
	t.Helper()
	bed, err := surface.BedFromModel(c, 10, env)
	if err != nil {
		t.Fatal(err)
	}
	return surface.Run(bed, env)
}

func TestRunRequiresReferencedWind(t *testing.T) {
	c := fuel.NewCatalog()
	env := crownEnv()
	env.WindHeightMode = surface.DirectMidflame
	_, err := Run(c, env, surface.Result{}, crownInputs())
	if !errors.Is(err, ErrWindSpeedHeight) {
		t.Fatalf("got %v, want ErrWindSpeedHeight", err)
	}
}

func TestCrownSpreadRateCorrelation(t *testing.T) {
	// The crown spread rate is 3.34 times a timber litter and understory
	// surface run on flat ground with 40 percent of the 20 ft wind at
	// midflame height.
	c := fuel.NewCatalog()
	env := crownEnv()

	surfaceResult := runSurface(t, c, env)
	res, err := Run(c, env, surfaceResult, crownInputs())
	if err != nil {
		t.Fatal(err)
	}

	ref := env
	ref.Slope = 0
	ref.Aspect = 0
	ref.WindDirection = 0
	ref.Orientation = surface.RelativeToUpslope
	ref.WindHeightMode = surface.DirectMidflame
	ref.WindSpeed = 0.4 * env.WindSpeed

	refResult := runSurface(t, c, ref)
	want := 3.34 * refResult.SpreadRate
	if math.Abs(res.SpreadRate-want) > 1e-9 {
		t.Errorf("crown spread rate = %v, want %v", res.SpreadRate, want)
	}
}

func TestCanopyFuelLoad(t *testing.T) {
	c := fuel.NewCatalog()
	env := crownEnv()
	in := crownInputs()
	surfaceResult := runSurface(t, c, env)

	res, err := Run(c, env, surfaceResult, in)
	if err != nil {
		t.Fatal(err)
	}
	wantLoad := in.CanopyBulkDensity * (env.CanopyHeight - in.CanopyBaseHeight)
	if math.Abs(res.FuelLoad-wantLoad) > 1e-12 {
		t.Errorf("canopy fuel load = %v, want %v", res.FuelLoad, wantLoad)
	}
	wantHPUA := surfaceResult.HeatPerUnitArea + wantLoad*8000.0
	if math.Abs(res.HeatPerUnitArea-wantHPUA) > 1e-9 {
		t.Errorf("heat per unit area = %v, want %v", res.HeatPerUnitArea, wantHPUA)
	}

	// A canopy base above the canopy top clamps the load at zero.
	shallow := in
	shallow.CanopyBaseHeight = 80.0
	res, err = Run(c, env, surfaceResult, shallow)
	if err != nil {
		t.Fatal(err)
	}
	if res.FuelLoad != 0 {
		t.Errorf("inverted canopy fuel load = %v, want 0", res.FuelLoad)
	}
}

func TestCriticalSurfaceIntensityFloors(t *testing.T) {
	// Inputs below the floors behave exactly like the floors themselves.
	floored := criticalSurfaceIntensity(0.05, 0.20)
	atFloor := criticalSurfaceIntensity(units.Meters.ToBase(0.1), 0.30)
	if math.Abs(floored-atFloor) > 1e-9 {
		t.Errorf("floored inputs give %v, floor inputs give %v", floored, atFloor)
	}

	// The critical flame length follows the surface flame length law.
	c := fuel.NewCatalog()
	env := crownEnv()
	res, err := Run(c, env, runSurface(t, c, env), crownInputs())
	if err != nil {
		t.Fatal(err)
	}
	if want := surface.FlameLength(res.CriticalSurfaceIntensity); math.Abs(res.CriticalSurfaceFlameLength-want) > 1e-12 {
		t.Errorf("critical flame length = %v, want %v", res.CriticalSurfaceFlameLength, want)
	}

	// Higher canopy base demands a stronger surface fire.
	low := criticalSurfaceIntensity(3.0, 1.0)
	high := criticalSurfaceIntensity(30.0, 1.0)
	if high <= low {
		t.Errorf("taller canopy base should raise the criterion: %v <= %v", high, low)
	}

	// Moister foliage demands a stronger surface fire.
	dry := criticalSurfaceIntensity(6.0, 0.7)
	moist := criticalSurfaceIntensity(6.0, 1.4)
	if moist <= dry {
		t.Errorf("moister foliage should raise the criterion: %v <= %v", moist, dry)
	}
}

func TestCriticalSpreadRate(t *testing.T) {
	if got := criticalSpreadRate(0); got != 0 {
		t.Errorf("zero bulk density critical rate = %v, want 0", got)
	}
	// Denser canopy sustains active crowning at a lower spread rate.
	sparse := criticalSpreadRate(units.KilogramsPerCubicMeter.ToBase(0.05))
	dense := criticalSpreadRate(units.KilogramsPerCubicMeter.ToBase(0.30))
	if dense >= sparse {
		t.Errorf("denser canopy should lower the critical rate: %v >= %v", dense, sparse)
	}
	// 0.3 kg/m³ needs 10 m/min of spread.
	want := units.MetersPerMinute.ToBase(10.0)
	if math.Abs(dense-want) > 1e-3 {
		t.Errorf("critical rate at 0.3 kg/m³ = %v, want %v", dense, want)
	}
}

func TestActiveRatioZeroWithoutCanopy(t *testing.T) {
	c := fuel.NewCatalog()
	env := crownEnv()
	in := crownInputs()
	in.CanopyBulkDensity = 0

	res, err := Run(c, env, runSurface(t, c, env), in)
	if err != nil {
		t.Fatal(err)
	}
	if res.ActiveRatio != 0 {
		t.Errorf("active ratio without canopy = %v, want 0", res.ActiveRatio)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		transition float64
		active     float64
		want       FireType
	}{
		{"quiet surface fire", 0.2, 0.3, Surface},
		{"torching", 1.5, 0.5, Torching},
		{"conditional crown", 0.5, 1.5, ConditionalCrown},
		{"active crowning", 1.5, 1.5, Crowning},
		{"boundary both at one", 1.0, 1.0, Crowning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.transition, tt.active); got != tt.want {
				t.Errorf("classify(%v, %v) = %v, want %v", tt.transition, tt.active, got, tt.want)
			}
		})
	}
}

func TestPowerOfWind(t *testing.T) {
	// A fire outrunning the wind feels no push.
	if got := powerOfWind(100.0, 200.0); got != 0 {
		t.Errorf("power of wind = %v, want 0 when the fire outruns the wind", got)
	}
	if got := powerOfWind(100.0, 100.0); got != 0 {
		t.Errorf("power of wind = %v, want 0 at matched speeds", got)
	}
	// 600 ft/min excess is 10 ft/s.
	got := powerOfWind(700.0, 100.0)
	want := 0.00106 * 1000.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("power of wind = %v, want %v", got, want)
	}
}

func TestPowerRatioClassification(t *testing.T) {
	c := fuel.NewCatalog()
	env := crownEnv()
	res, err := Run(c, env, runSurface(t, c, env), crownInputs())
	if err != nil {
		t.Fatal(err)
	}
	if res.WindDriven == res.PlumeDominated {
		t.Error("a fire is either wind driven or plume dominated")
	}
	if res.PowerOfWind > 1e-7 {
		want := res.PowerOfFire / res.PowerOfWind
		if math.Abs(res.PowerRatio-want) > 1e-9 {
			t.Errorf("power ratio = %v, want %v", res.PowerRatio, want)
		}
	}
}

func TestFireTypeString(t *testing.T) {
	tests := []struct {
		t    FireType
		want string
	}{
		{Surface, "surface"},
		{Torching, "torching"},
		{ConditionalCrown, "conditional crown"},
		{Crowning, "crowning"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
