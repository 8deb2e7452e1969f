// Package behave is the top-level facade over the surface and crown fire
// models. It owns the fuel model catalog, validates inputs once at the
// boundary, and dispatches on the fuel selection to the right bed builder so
// callers work with a single entry point.
package behave

import (
	"errors"
	"fmt"

	"github.com/firesci/firebehave/internal/log"
	"github.com/firesci/firebehave/pkg/crown"
	"github.com/firesci/firebehave/pkg/fuel"
	"github.com/firesci/firebehave/pkg/surface"
)

// FuelSelection is a tagged union over the supported fuel descriptions.
// Exactly one selection drives a run; constructing through the New* helpers
// keeps the tag and payload consistent.
type FuelSelection struct {
	kind fuelKind

	modelNumber int

	secondModelNumber int
	coverageFirst     float64
	twoFuelMethod     surface.TwoFuelMethod

	palmetto  surface.PalmettoGallberry
	aspen     surface.WesternAspen
	chaparral surface.Chaparral
}

type fuelKind int

const (
	standardFuel fuelKind = iota
	twoFuelModels
	palmettoGallberry
	westernAspen
	chaparralFuel
)

// StandardFuel selects a single catalog fuel model.
func StandardFuel(modelNumber int) FuelSelection {
	return FuelSelection{kind: standardFuel, modelNumber: modelNumber}
}

// TwoFuelModels selects two catalog fuel models combined by coverage.
func TwoFuelModels(first, second int, coverageFirst float64, method surface.TwoFuelMethod) FuelSelection {
	return FuelSelection{
		kind:              twoFuelModels,
		modelNumber:       first,
		secondModelNumber: second,
		coverageFirst:     coverageFirst,
		twoFuelMethod:     method,
	}
}

// PalmettoGallberry selects the palmetto-gallberry special fuel bed.
func PalmettoGallberry(pg surface.PalmettoGallberry) FuelSelection {
	return FuelSelection{kind: palmettoGallberry, palmetto: pg}
}

// WesternAspen selects the western aspen special fuel bed.
func WesternAspen(wa surface.WesternAspen) FuelSelection {
	return FuelSelection{kind: westernAspen, aspen: wa}
}

// Chaparral selects the chaparral special fuel bed.
func Chaparral(ch surface.Chaparral) FuelSelection {
	return FuelSelection{kind: chaparralFuel, chaparral: ch}
}

// Runner owns the catalog and exposes the model entry points.
type Runner struct {
	catalog *fuel.Catalog
}

// NewRunner returns a runner over the standard fuel model catalog.
func NewRunner() *Runner {
	return &Runner{catalog: fuel.NewCatalog()}
}

// Catalog exposes the underlying fuel model catalog.
func (r *Runner) Catalog() *fuel.Catalog {
	return r.catalog
}

// ErrNegativeMoisture is returned when any moisture input is below zero.
var ErrNegativeMoisture = errors.New("moisture content cannot be negative")

func validate(env surface.Environment) error {
	for _, m := range []float64{
		env.MoistureOneHour, env.MoistureTenHour, env.MoistureHundredHour,
		env.MoistureLiveHerbaceous, env.MoistureLiveWoody,
	} {
		if m < 0 {
			return ErrNegativeMoisture
		}
	}
	switch env.WindHeightMode {
	case surface.DirectMidflame, surface.TwentyFoot, surface.TenMeter:
	default:
		return fmt.Errorf("unknown wind height mode %d", env.WindHeightMode)
	}
	if env.WindSpeed < 0 {
		return errors.New("wind speed cannot be negative")
	}
	return nil
}

// RunSurface computes surface fire behavior for the fuel selection, spreading
// in the heading direction.
func (r *Runner) RunSurface(sel FuelSelection, env surface.Environment) (surface.Result, error) {
	if err := validate(env); err != nil {
		return surface.Result{}, err
	}

	switch sel.kind {
	case standardFuel:
		// Degenerate fuel burns nothing; that is a result, not a failure.
		if r.fuelIsDegenerate(sel.modelNumber) {
			return surface.Result{}, nil
		}
	case twoFuelModels:
		reduced, zero := r.reduceTwoFuel(sel)
		if zero {
			return surface.Result{}, nil
		}
		if reduced.kind == twoFuelModels {
			combined, err := surface.RunTwoFuelModels(r.catalog, reduced.modelNumber, reduced.secondModelNumber,
				reduced.coverageFirst, reduced.twoFuelMethod, env)
			if err != nil {
				return surface.Result{}, err
			}
			return combined.Combined, nil
		}
		sel = reduced
	}

	bed, err := r.bed(sel, env)
	if err != nil {
		return surface.Result{}, err
	}
	return surface.Run(bed, env), nil
}

// reduceTwoFuel handles degenerate components of a two-fuel selection. A
// degenerate model that occupies none of the site drops out and the other
// model runs alone; a degenerate model occupying any of the site zeroes the
// whole result.
func (r *Runner) reduceTwoFuel(sel FuelSelection) (FuelSelection, bool) {
	firstDegenerate := r.fuelIsDegenerate(sel.modelNumber)
	secondDegenerate := r.fuelIsDegenerate(sel.secondModelNumber)
	switch {
	case !firstDegenerate && !secondDegenerate:
		return sel, false
	case secondDegenerate && !firstDegenerate && sel.coverageFirst >= 1.0:
		return StandardFuel(sel.modelNumber), false
	case firstDegenerate && !secondDegenerate && sel.coverageFirst <= 0.0:
		return StandardFuel(sel.secondModelNumber), false
	default:
		return FuelSelection{}, true
	}
}

func (r *Runner) fuelIsDegenerate(modelNumber int) bool {
	if !r.catalog.IsFuelModelDefined(modelNumber) || r.catalog.IsAllFuelLoadZero(modelNumber) {
		log.Debugf("fuel model %d is undefined or carries no load; reporting zero fire behavior", modelNumber)
		return true
	}
	return false
}

// RunSurfaceInDirection computes surface fire behavior plus the spread rate
// along a direction of interest.
func (r *Runner) RunSurfaceInDirection(sel FuelSelection, env surface.Environment, direction float64) (surface.Result, error) {
	if err := validate(env); err != nil {
		return surface.Result{}, err
	}
	if sel.kind == twoFuelModels {
		reduced, zero := r.reduceTwoFuel(sel)
		if zero {
			return surface.Result{}, nil
		}
		if reduced.kind == twoFuelModels {
			combined, err := surface.RunTwoFuelModelsInDirection(r.catalog, reduced.modelNumber, reduced.secondModelNumber,
				reduced.coverageFirst, reduced.twoFuelMethod, env, direction)
			if err != nil {
				return surface.Result{}, err
			}
			return combined.Combined, nil
		}
		sel = reduced
	}
	if sel.kind == standardFuel && r.fuelIsDegenerate(sel.modelNumber) {
		return surface.Result{}, nil
	}
	bed, err := r.bed(sel, env)
	if err != nil {
		return surface.Result{}, err
	}
	return surface.RunInDirection(bed, env, direction), nil
}

// RunCrown runs the surface model for the selection and layers the crown
// fire model on top of it.
func (r *Runner) RunCrown(sel FuelSelection, env surface.Environment, in crown.Inputs) (surface.Result, crown.Result, error) {
	surfaceResult, err := r.RunSurface(sel, env)
	if err != nil {
		return surface.Result{}, crown.Result{}, err
	}
	crownResult, err := crown.Run(r.catalog, env, surfaceResult, in)
	if err != nil {
		return surface.Result{}, crown.Result{}, err
	}
	log.Debugw("crown fire run complete",
		"fireType", crownResult.FireType.String(),
		"transitionRatio", crownResult.TransitionRatio,
		"activeRatio", crownResult.ActiveRatio,
	)
	return surfaceResult, crownResult, nil
}

func (r *Runner) bed(sel FuelSelection, env surface.Environment) (surface.FuelBed, error) {
	switch sel.kind {
	case standardFuel:
		return surface.BedFromModel(r.catalog, sel.modelNumber, env)
	case palmettoGallberry:
		return sel.palmetto.Bed(env), nil
	case westernAspen:
		return sel.aspen.Bed(env)
	case chaparralFuel:
		return sel.chaparral.Bed(env), nil
	default:
		return surface.FuelBed{}, fmt.Errorf("fuel selection kind %d has no bed builder", sel.kind)
	}
}
