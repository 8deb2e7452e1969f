package surface

import (
	"math"
	"testing"
)

func TestWindSpeedAtTwentyFeet(t *testing.T) {
	tests := []struct {
		name string
		mode WindHeightMode
		in   float64
		want float64
	}{
		{"twenty foot passes through", TwentyFoot, 880.0, 880.0},
		{"ten meter reduced", TenMeter, 880.0, 880.0 / 1.15},
		{"midflame unavailable", DirectMidflame, 880.0, -1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Environment{WindSpeed: tt.in, WindHeightMode: tt.mode}
			got := WindSpeedAtTwentyFeet(env)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WindSpeedAtTwentyFeet = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindAdjustmentFactor(t *testing.T) {
	t.Run("user override wins", func(t *testing.T) {
		env := Environment{WindAdjustmentFactor: 0.3, CanopyCover: 0.8, CrownRatio: 0.9, CanopyHeight: 60}
		if got := windAdjustmentFactor(env, 1.0); got != 0.3 {
			t.Errorf("got %v, want the 0.3 override", got)
		}
	})

	t.Run("unsheltered depends on fuel depth", func(t *testing.T) {
		env := Environment{}
		shallow := windAdjustmentFactor(env, 0.2)
		deep := windAdjustmentFactor(env, 6.0)
		if shallow <= 0 || shallow >= 1 {
			t.Errorf("shallow factor = %v, want in (0, 1)", shallow)
		}
		if deep <= shallow {
			t.Errorf("deeper fuel bed should see more wind: %v <= %v", deep, shallow)
		}
	})

	t.Run("sheltered by canopy", func(t *testing.T) {
		open := Environment{}
		sheltered := Environment{CanopyCover: 0.8, CrownRatio: 0.5, CanopyHeight: 60}
		wafOpen := windAdjustmentFactor(open, 1.0)
		wafSheltered := windAdjustmentFactor(sheltered, 1.0)
		if wafSheltered >= wafOpen {
			t.Errorf("canopy should reduce the factor: %v >= %v", wafSheltered, wafOpen)
		}
	})

	t.Run("canopy without height stays unsheltered", func(t *testing.T) {
		// Dense cover with zero canopy height cannot shelter the bed; the
		// sheltered formula would divide by zero here.
		flat := Environment{CanopyCover: 0.5, CrownRatio: 0.5, CanopyHeight: 0}
		open := Environment{}
		got := windAdjustmentFactor(flat, 1.0)
		if math.IsNaN(got) || got <= 0 {
			t.Fatalf("factor = %v, want a positive finite value", got)
		}
		if want := windAdjustmentFactor(open, 1.0); got != want {
			t.Errorf("zero-height canopy factor = %v, want open factor %v", got, want)
		}
	})

	t.Run("sparse canopy stays unsheltered", func(t *testing.T) {
		// Crown fill below 5 percent uses the open formula.
		sparse := Environment{CanopyCover: 0.1, CrownRatio: 0.2, CanopyHeight: 60}
		open := Environment{}
		if got, want := windAdjustmentFactor(sparse, 1.0), windAdjustmentFactor(open, 1.0); got != want {
			t.Errorf("sparse canopy factor = %v, want open factor %v", got, want)
		}
	})
}

func TestMidflameWindSpeed(t *testing.T) {
	t.Run("midflame mode passes through", func(t *testing.T) {
		env := Environment{WindSpeed: 300.0, WindHeightMode: DirectMidflame}
		if got := midflameWindSpeed(env, 1.0); got != 300.0 {
			t.Errorf("got %v, want 300", got)
		}
	})

	t.Run("twenty foot applies adjustment", func(t *testing.T) {
		env := Environment{WindSpeed: 880.0, WindHeightMode: TwentyFoot, WindAdjustmentFactor: 0.4}
		if got := midflameWindSpeed(env, 1.0); math.Abs(got-352.0) > 1e-9 {
			t.Errorf("got %v, want 352", got)
		}
	})

	t.Run("ten meter reduces then adjusts", func(t *testing.T) {
		env := Environment{WindSpeed: 880.0, WindHeightMode: TenMeter, WindAdjustmentFactor: 0.4}
		want := 880.0 / 1.15 * 0.4
		if got := midflameWindSpeed(env, 1.0); math.Abs(got-want) > 1e-9 {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
