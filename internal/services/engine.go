package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
)

// Kilometers-to-miles conversion factor applied when default_unit is mi.
const milesPerKm = 0.621371

// Engine turns a pair of place descriptors into a mode-scaled great-circle
// distance. Multipliers and the output unit come from the configuration
// store on every call, so operator updates take effect immediately.
type Engine struct {
	config ports.ConfigRepository
}

func NewEngine(config ports.ConfigRepository) *Engine {
	return &Engine{config: config}
}

// EngineResult is one computed distance plus the synthesized endpoints.
type EngineResult struct {
	Distance    float64
	Unit        string
	Origin      domain.Coordinates
	Destination domain.Coordinates
}

// Compute synthesizes coordinates for both places, measures the great-circle
// distance between them, scales it by the mode's configured multiplier and
// rounds to two decimals in the configured unit. Modes with no configured
// multiplier scale by 1.0; a configured value that does not parse as a float
// is an error rather than a silent fallback.
func (e *Engine) Compute(ctx context.Context, query ports.TripQuery) (_ EngineResult, err error) {
	defer obs.Time(ctx, "engine.Compute")(&err)

	origin := domain.SynthesizeCoordinates(query.Origin.City, query.Origin.Region, query.Origin.Street)
	destination := domain.SynthesizeCoordinates(query.Destination.City, query.Destination.Region, query.Destination.Street)

	distance := origin.HaversineKm(destination)

	multiplier, err := e.multiplier(ctx, query.Mode)
	if err != nil {
		return EngineResult{}, fmt.Errorf("compute distance: %w", err)
	}
	distance *= multiplier

	unit, err := e.unit(ctx)
	if err != nil {
		return EngineResult{}, fmt.Errorf("compute distance: %w", err)
	}
	if unit == "mi" {
		distance *= milesPerKm
	}

	return EngineResult{
		Distance:    math.Round(distance*100) / 100,
		Unit:        unit,
		Origin:      origin,
		Destination: destination,
	}, nil
}

func (e *Engine) multiplier(ctx context.Context, mode string) (float64, error) {
	key := domain.MultiplierKey(mode)

	raw, ok, err := e.config.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return 1.0, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return value, nil
}

func (e *Engine) unit(ctx context.Context) (string, error) {
	raw, ok, err := e.config.Get(ctx, domain.DefaultUnitKey)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", domain.DefaultUnitKey, err)
	}
	if !ok {
		return "km", nil
	}

	unit := strings.ToLower(strings.TrimSpace(raw))
	if unit != "km" && unit != "mi" {
		return "km", nil
	}
	return unit, nil
}
