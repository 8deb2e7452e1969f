package surface

import (
	"math"
	"testing"
)

func TestPalmettoGallberryLoads(t *testing.T) {
	pg := PalmettoGallberry{
		AgeOfRough:         10,
		HeightOfUnderstory: 3,
		PalmettoCoverage:   0.5,
		OverstoryBasalArea: 80,
	}

	if got := pg.DeadOneHourLoad(); got <= 0 {
		t.Errorf("dead one-hour load = %v, want > 0", got)
	}
	if got := pg.DeadTenHourLoad(); got <= 0 {
		t.Errorf("dead ten-hour load = %v, want > 0", got)
	}
	if got := pg.DeadFoliageLoad(); got <= 0 {
		t.Errorf("dead foliage load = %v, want > 0", got)
	}
	if got := pg.LitterLoad(); got <= 0 {
		t.Errorf("litter load = %v, want > 0", got)
	}
	if got := pg.LiveFoliageLoad(); got <= 0 {
		t.Errorf("live foliage load = %v, want > 0", got)
	}
}

func TestPalmettoGallberryClamps(t *testing.T) {
	// A very young, very short rough drives several regressions negative;
	// loads clamp at zero.
	pg := PalmettoGallberry{AgeOfRough: 1, HeightOfUnderstory: 0.1, PalmettoCoverage: 0.1, OverstoryBasalArea: 10}

	if got := pg.DeadTenHourLoad(); got != 0 {
		t.Errorf("dead ten-hour load = %v, want clamp to 0", got)
	}
	if got := pg.LiveTenHourLoad(); got != 0 {
		t.Errorf("live ten-hour load = %v, want clamp to 0", got)
	}
}

func TestPalmettoGallberryDepth(t *testing.T) {
	pg := PalmettoGallberry{HeightOfUnderstory: 4.5}
	if got := pg.FuelbedDepth(); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("fuel bed depth = %v, want two thirds of height", got)
	}
}

func TestPalmettoGallberryLoadsGrowWithAge(t *testing.T) {
	young := PalmettoGallberry{AgeOfRough: 3, HeightOfUnderstory: 2, PalmettoCoverage: 0.4, OverstoryBasalArea: 60}
	old := young
	old.AgeOfRough = 20

	if old.DeadOneHourLoad() <= young.DeadOneHourLoad() {
		t.Error("dead one-hour load should grow with rough age")
	}
	if old.DeadFoliageLoad() <= young.DeadFoliageLoad() {
		t.Error("dead foliage load should grow with rough age")
	}
}

func TestPalmettoGallberryBed(t *testing.T) {
	pg := PalmettoGallberry{AgeOfRough: 10, HeightOfUnderstory: 3, PalmettoCoverage: 0.5, OverstoryBasalArea: 80}
	env := Environment{
		MoistureOneHour:        0.06,
		MoistureTenHour:        0.07,
		MoistureHundredHour:    0.08,
		MoistureLiveHerbaceous: 1.00,
		MoistureLiveWoody:      0.90,
	}
	bed := pg.Bed(env)

	if len(bed.Dead) != 4 || len(bed.Live) != 3 {
		t.Fatalf("bed classes = %d dead, %d live; want 4 and 3", len(bed.Dead), len(bed.Live))
	}
	if bed.MextDead != 0.40 {
		t.Errorf("dead mext = %v, want 0.40", bed.MextDead)
	}
	// Litter takes the hundred-hour moisture, dead foliage the one-hour.
	if bed.Dead[3].Moisture != 0.08 {
		t.Errorf("litter moisture = %v, want hundred-hour", bed.Dead[3].Moisture)
	}
	if bed.Dead[2].Moisture != 0.06 {
		t.Errorf("dead foliage moisture = %v, want one-hour", bed.Dead[2].Moisture)
	}
	// Live foliage takes the herbaceous moisture, stems the woody.
	if bed.Live[2].Moisture != 1.00 {
		t.Errorf("live foliage moisture = %v, want herbaceous", bed.Live[2].Moisture)
	}
	if bed.Live[0].Moisture != 0.90 {
		t.Errorf("live stem moisture = %v, want woody", bed.Live[0].Moisture)
	}

	res := Run(bed, env)
	if res.SpreadRate <= 0 {
		t.Errorf("palmetto bed spread rate = %v, want > 0", res.SpreadRate)
	}
}
