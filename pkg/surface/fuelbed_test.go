package surface

import (
	"math"
	"testing"

	"github.com/firesci/firebehave/pkg/fuel"
	"github.com/firesci/firebehave/pkg/units"
)

func TestCuredHerbaceousFraction(t *testing.T) {
	tests := []struct {
		name     string
		moisture float64
		want     float64
	}{
		{"bone dry fully cured", 0.05, 1.0},
		{"just under threshold", 0.29, 1.0},
		{"at lower threshold", 0.30, 1.0},
		{"midpoint", 0.75, 0.5},
		{"just under green", 1.19, (1.20 - 1.19) / 0.90},
		{"fully green", 1.20, 0.0},
		{"saturated", 2.50, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CuredHerbaceousFraction(tt.moisture)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CuredHerbaceousFraction(%v) = %v, want %v", tt.moisture, got, tt.want)
			}
		})
	}
}

func TestBedFromModelUnknown(t *testing.T) {
	c := fuel.NewCatalog()
	if _, err := BedFromModel(c, 999, Environment{}); err == nil {
		t.Fatal("expected error for undefined fuel model")
	}
}

func TestBedFromModelStatic(t *testing.T) {
	c := fuel.NewCatalog()
	env := Environment{
		MoistureOneHour:     0.06,
		MoistureTenHour:     0.07,
		MoistureHundredHour: 0.08,
		MoistureLiveWoody:   0.90,
	}
	bed, err := BedFromModel(c, 10, env)
	if err != nil {
		t.Fatal(err)
	}
	if len(bed.Dead) != 3 {
		t.Errorf("FM10 dead classes = %d, want 3", len(bed.Dead))
	}
	if len(bed.Live) != 1 {
		t.Errorf("FM10 live classes = %d, want 1", len(bed.Live))
	}
	if bed.Dead[0].Moisture != 0.06 || bed.Dead[1].Moisture != 0.07 || bed.Dead[2].Moisture != 0.08 {
		t.Error("dead moistures did not map to time-lag classes in order")
	}
	if bed.Live[0].Moisture != 0.90 {
		t.Errorf("live woody moisture = %v, want 0.90", bed.Live[0].Moisture)
	}
}

func TestBedFromModelDynamicCuring(t *testing.T) {
	c := fuel.NewCatalog()
	base := Environment{
		MoistureOneHour:        0.06,
		MoistureTenHour:        0.07,
		MoistureHundredHour:    0.08,
		MoistureLiveHerbaceous: 0.75, // half cured
	}

	// GR1 carries one-hour and herbaceous load only.
	bed, err := BedFromModel(c, 101, base)
	if err != nil {
		t.Fatal(err)
	}
	// Cured herb particle plus the one-hour class.
	if len(bed.Dead) != 2 {
		t.Fatalf("half-cured GR1 dead classes = %d, want 2", len(bed.Dead))
	}
	if len(bed.Live) != 1 {
		t.Fatalf("half-cured GR1 live classes = %d, want 1", len(bed.Live))
	}
	herbTotal := c.FuelLoadLiveHerbaceous(101, units.PoundsPerSquareFoot)
	if math.Abs(bed.Dead[0].Load-0.5*herbTotal) > 1e-12 {
		t.Errorf("cured dead load = %v, want %v", bed.Dead[0].Load, 0.5*herbTotal)
	}
	if math.Abs(bed.Live[0].Load-0.5*herbTotal) > 1e-12 {
		t.Errorf("remaining live herb load = %v, want %v", bed.Live[0].Load, 0.5*herbTotal)
	}
	// The cured particle keeps the herbaceous surface area but takes the
	// one-hour moisture.
	m, _ := c.Model(101)
	if bed.Dead[0].Savr != m.SavrLiveHerbaceous {
		t.Errorf("cured particle savr = %v, want %v", bed.Dead[0].Savr, m.SavrLiveHerbaceous)
	}
	if bed.Dead[0].Moisture != base.MoistureOneHour {
		t.Errorf("cured particle moisture = %v, want one-hour moisture", bed.Dead[0].Moisture)
	}

	// Fully green: no transfer.
	green := base
	green.MoistureLiveHerbaceous = 1.50
	bedGreen, err := BedFromModel(c, 101, green)
	if err != nil {
		t.Fatal(err)
	}
	if len(bedGreen.Dead) != 1 {
		t.Errorf("green GR1 dead classes = %d, want 1", len(bedGreen.Dead))
	}
	if math.Abs(bedGreen.Live[0].Load-herbTotal) > 1e-12 {
		t.Error("green herb load should stay fully live")
	}

	// Fully cured: all herb load transfers and no live class remains.
	dry := base
	dry.MoistureLiveHerbaceous = 0.10
	bedDry, err := BedFromModel(c, 101, dry)
	if err != nil {
		t.Fatal(err)
	}
	if len(bedDry.Live) != 0 {
		t.Errorf("cured GR1 live classes = %d, want 0", len(bedDry.Live))
	}
}

func TestLiveMoistureOfExtinction(t *testing.T) {
	c := fuel.NewCatalog()
	env := Environment{
		MoistureOneHour:     0.06,
		MoistureTenHour:     0.07,
		MoistureHundredHour: 0.08,
		MoistureLiveWoody:   0.90,
	}
	bed, err := BedFromModel(c, 10, env)
	if err != nil {
		t.Fatal(err)
	}
	mext := bed.liveMoistureOfExtinction()
	if mext < bed.MextDead {
		t.Errorf("live mext %v below dead mext %v", mext, bed.MextDead)
	}

	// Drier dead fuel raises the live extinction moisture.
	drier := env
	drier.MoistureOneHour = 0.02
	drier.MoistureTenHour = 0.03
	drier.MoistureHundredHour = 0.04
	bedDrier, _ := BedFromModel(c, 10, drier)
	if bedDrier.liveMoistureOfExtinction() < mext {
		t.Error("drier dead fuel should not lower the live extinction moisture")
	}

	// A bed-level override wins.
	bed.LiveMext = 0.65
	if got := bed.liveMoistureOfExtinction(); got != 0.65 {
		t.Errorf("override live mext = %v, want 0.65", got)
	}
}

func TestComputeIntermediates(t *testing.T) {
	c := fuel.NewCatalog()
	env := Environment{
		MoistureOneHour:     0.06,
		MoistureTenHour:     0.07,
		MoistureHundredHour: 0.08,
		MoistureLiveWoody:   0.90,
	}
	bed, err := BedFromModel(c, 10, env)
	if err != nil {
		t.Fatal(err)
	}
	im := bed.compute()

	if im.sigma <= 0 || im.sigma > 3500 {
		t.Errorf("characteristic savr = %v, out of plausible range", im.sigma)
	}
	if im.reactionIntensity <= 0 {
		t.Errorf("reaction intensity = %v, want > 0", im.reactionIntensity)
	}
	if im.propagatingFlux <= 0 || im.propagatingFlux >= 1 {
		t.Errorf("propagating flux ratio = %v, want in (0, 1)", im.propagatingFlux)
	}
	if im.noWindNoSlopeRate <= 0 {
		t.Errorf("no-wind no-slope rate = %v, want > 0", im.noWindNoSlopeRate)
	}
	if math.Abs(im.residenceTime-384.0/im.sigma) > 1e-12 {
		t.Errorf("residence time = %v, want 384/sigma", im.residenceTime)
	}

	// Moisture above extinction kills the reaction.
	wet := env
	wet.MoistureOneHour = 0.35
	wet.MoistureTenHour = 0.35
	wet.MoistureHundredHour = 0.35
	wet.MoistureLiveWoody = 3.0
	bedWet, _ := BedFromModel(c, 10, wet)
	imWet := bedWet.compute()
	if imWet.reactionIntensity != 0 {
		t.Errorf("saturated bed reaction intensity = %v, want 0", imWet.reactionIntensity)
	}
}

func TestComputeEmptyBed(t *testing.T) {
	var bed FuelBed
	im := bed.compute()
	if im.reactionIntensity != 0 || im.noWindNoSlopeRate != 0 {
		t.Error("empty bed should produce zero intermediates")
	}
}
