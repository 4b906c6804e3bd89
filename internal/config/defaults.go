// Package config provides configuration loading, defaults, and validation
// for nciscan.
package config

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "release"

	DefaultBondTolerance = 0.3
	DefaultRadiiSource   = "cordero"

	DefaultHBondMaxDistance = 2.5
	DefaultHBondMinAngle    = 160.0

	DefaultSigmaHoleVDWFraction = 0.9

	DefaultStericTolerance = 0.4

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsPath = "/metrics"
)

// Default element sets; slices cannot be constants.
var (
	DefaultHBondDonors        = []string{"N", "O", "F"}
	DefaultHBondAcceptors     = []string{"N", "O", "F"}
	DefaultSigmaHoleAcceptors = []string{"N", "O", "F", "S", "Cl", "Br", "I"}
)

// ApplyDefaults fills every zero-value field in cfg with the standard
// default.  Fields already set by the caller (non-zero values) are left
// unchanged so explicit configuration always wins.
//
// The steric booleans cannot be defaulted here: false is indistinguishable
// from unset.  Their defaults live in NewDefault, and viper's SetDefault in
// the loader covers the file/env path.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ───────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}

	// ── Detection ────────────────────────────────────────────────────────────
	if cfg.Detection.Bond.Tolerance == 0 {
		cfg.Detection.Bond.Tolerance = DefaultBondTolerance
	}
	if cfg.Detection.Bond.RadiiSource == "" {
		cfg.Detection.Bond.RadiiSource = DefaultRadiiSource
	}
	if cfg.Detection.HBond.MaxDistance == 0 {
		cfg.Detection.HBond.MaxDistance = DefaultHBondMaxDistance
	}
	if cfg.Detection.HBond.MinAngle == 0 {
		cfg.Detection.HBond.MinAngle = DefaultHBondMinAngle
	}
	if len(cfg.Detection.HBond.Donors) == 0 {
		cfg.Detection.HBond.Donors = append([]string(nil), DefaultHBondDonors...)
	}
	if len(cfg.Detection.HBond.Acceptors) == 0 {
		cfg.Detection.HBond.Acceptors = append([]string(nil), DefaultHBondAcceptors...)
	}
	if cfg.Detection.SigmaHole.VDWFraction == 0 {
		cfg.Detection.SigmaHole.VDWFraction = DefaultSigmaHoleVDWFraction
	}
	if len(cfg.Detection.SigmaHole.Acceptors) == 0 {
		cfg.Detection.SigmaHole.Acceptors = append([]string(nil), DefaultSigmaHoleAcceptors...)
	}
	if cfg.Detection.Steric.Tolerance == 0 {
		cfg.Detection.Steric.Tolerance = DefaultStericTolerance
	}

	// ── Log ──────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// ── Metrics ──────────────────────────────────────────────────────────────
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}

// NewDefault returns a validated Config carrying every default, including
// the boolean fields ApplyDefaults cannot reach.  The CLI starts from this
// when no config file is given.
func NewDefault() *Config {
	cfg := &Config{}
	cfg.Detection.Steric.OnlyHydrogen = true
	cfg.Detection.Steric.IgnoreSharedNeighbor = true
	cfg.Metrics.Enabled = true
	ApplyDefaults(cfg)
	return cfg
}
