package domain

import "time"

// Travel modes with a seeded multiplier. Modes outside this set are still
// accepted; they scale by 1.0 unless an operator configures a multiplier.
const (
	ModeDirect  = "direct"
	ModeWalking = "walking"
	ModeDriving = "driving"

	DefaultMode = ModeDirect
)

// DefaultUnitKey names the configuration entry selecting km or mi output.
const DefaultUnitKey = "default_unit"

// MultiplierKey returns the configuration key holding the distance multiplier
// for a travel mode.
func MultiplierKey(mode string) string { return mode + "_multiplier" }

// ConfigEntry is one named service parameter. The seeded set below is a
// starting point, not a schema: operators may write keys nothing reads yet.
type ConfigEntry struct {
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}

// DefaultConfig returns the entries seeded at first startup. Seeding is
// insert-if-absent, so a restart never claws back an operator's update.
func DefaultConfig() []ConfigEntry {
	return []ConfigEntry{
		{Key: MultiplierKey(ModeDirect), Value: "1.2", Description: "Correction multiplier for straight-line trips"},
		{Key: MultiplierKey(ModeWalking), Value: "1.4", Description: "Correction multiplier for walking trips"},
		{Key: MultiplierKey(ModeDriving), Value: "1.1", Description: "Correction multiplier for driving trips"},
		{Key: DefaultUnitKey, Value: "km", Description: "Unit distances are reported in (km or mi)"},
	}
}
