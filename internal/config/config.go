// Package config defines all configuration structures for nciscan.  No I/O
// or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables for nciserver.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// BondConfig holds covalent bond detection parameters.
type BondConfig struct {
	// Tolerance is the margin in Å added to the covalent radius sum.
	Tolerance float64 `mapstructure:"tolerance"`
	// RadiiSource selects the covalent radius set: "cordero" | "pyykko".
	RadiiSource string `mapstructure:"radii_source"`
}

// HBondConfig holds hydrogen-bond detection parameters.
type HBondConfig struct {
	MaxDistance float64  `mapstructure:"max_distance"` // Å, H···acceptor
	MinAngle    float64  `mapstructure:"min_angle"`    // degrees, donor–H···acceptor
	Donors      []string `mapstructure:"donors"`
	Acceptors   []string `mapstructure:"acceptors"`
}

// SigmaHoleConfig holds halogen/chalcogen bond detection parameters.
type SigmaHoleConfig struct {
	VDWFraction float64  `mapstructure:"vdw_fraction"`
	Acceptors   []string `mapstructure:"acceptors"`
}

// StericConfig holds steric-clash detection parameters.
type StericConfig struct {
	Tolerance            float64 `mapstructure:"tolerance"` // Å below the vdW sum
	OnlyHydrogen         bool    `mapstructure:"only_hydrogen"`
	IgnoreSharedNeighbor bool    `mapstructure:"ignore_shared_neighbor"`
}

// DetectionConfig groups everything the analysis pipeline needs.
type DetectionConfig struct {
	Bond      BondConfig      `mapstructure:"bond"`
	HBond     HBondConfig     `mapstructure:"hbond"`
	SigmaHole SigmaHoleConfig `mapstructure:"sigma_hole"`
	Steric    StericConfig    `mapstructure:"steric"`
	// EnableDetectors activates detectors that are off by default,
	// e.g. "steric_clash".
	EnableDetectors []string `mapstructure:"enable_detectors"`
	// SkipDetectors deactivates detectors regardless of their default.
	SkipDetectors []string `mapstructure:"skip_detectors"`
}

// LogConfig holds logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure shared by the CLI and the
// server.  Every component reads its settings from the relevant sub-struct.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Detection DetectionConfig `mapstructure:"detection"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Detection
	if c.Detection.Bond.Tolerance < 0 {
		return fmt.Errorf("config: detection.bond.tolerance must be >= 0, got %g", c.Detection.Bond.Tolerance)
	}
	if !chem.RadiiSource(c.Detection.Bond.RadiiSource).IsValid() {
		return fmt.Errorf("config: detection.bond.radii_source %q is invalid; expected cordero|pyykko", c.Detection.Bond.RadiiSource)
	}
	if c.Detection.HBond.MaxDistance <= 0 {
		return fmt.Errorf("config: detection.hbond.max_distance must be > 0, got %g", c.Detection.HBond.MaxDistance)
	}
	if c.Detection.HBond.MinAngle < 0 || c.Detection.HBond.MinAngle > 180 {
		return fmt.Errorf("config: detection.hbond.min_angle %g is out of range [0, 180]", c.Detection.HBond.MinAngle)
	}
	if len(c.Detection.HBond.Donors) == 0 {
		return fmt.Errorf("config: detection.hbond.donors must list at least one element")
	}
	if len(c.Detection.HBond.Acceptors) == 0 {
		return fmt.Errorf("config: detection.hbond.acceptors must list at least one element")
	}
	if c.Detection.SigmaHole.VDWFraction <= 0 || c.Detection.SigmaHole.VDWFraction > 1 {
		return fmt.Errorf("config: detection.sigma_hole.vdw_fraction %g is out of range (0, 1]", c.Detection.SigmaHole.VDWFraction)
	}
	if len(c.Detection.SigmaHole.Acceptors) == 0 {
		return fmt.Errorf("config: detection.sigma_hole.acceptors must list at least one element")
	}
	if c.Detection.Steric.Tolerance < 0 {
		return fmt.Errorf("config: detection.steric.tolerance must be >= 0, got %g", c.Detection.Steric.Tolerance)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	// Metrics
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}

	return nil
}
