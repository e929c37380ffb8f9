// Package config loads touch panel settings from a TOML file and
// TOUCHSTRIP_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/phanxgames/touchstrip"
	"github.com/phanxgames/touchstrip/layout"
	"github.com/phanxgames/touchstrip/sensor"
)

// Config holds application configuration.
type Config struct {
	Panel    PanelConfig
	Serial   SerialConfig
	Ring     RingConfig
	Viewport ViewportConfig
	Layout   LayoutConfig
}

// PanelConfig holds hit-testing settings.
type PanelConfig struct {
	ProbeRadius float64 `mapstructure:"probe_radius"`
	SampleCount int     `mapstructure:"sample_count"`
	Size        float64
	Enlarged    bool
	Debug       bool
}

// SerialConfig holds the sensor link settings. An empty Port tries the
// platform defaults.
type SerialConfig struct {
	Port     string
	Baud     int
	Interval time.Duration
}

// RingConfig maps button names to host keys.
type RingConfig struct {
	Enabled bool
	Keys    map[string]string
}

// ViewportConfig places the panel on screen. A zero Scale fits the panel
// to the window.
type ViewportConfig struct {
	X, Y     float64
	Scale    float64
	Rotation float64
}

// LayoutConfig optionally replaces the standard zones.
type LayoutConfig struct {
	Zones []ZoneConfig
}

// ZoneConfig is one custom zone. Button defaults to Name. Shape and
// Enlarged are lists of [x, y] pairs.
type ZoneConfig struct {
	Name     string
	Button   string
	Shape    [][]float64
	Enlarged [][]float64
}

// Load reads configuration from path, or from touchstrip.toml in the working
// directory or ~/.config/touchstrip when path is empty. A missing default
// file is not an error. Env var overrides use prefix TOUCHSTRIP_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("panel.probe_radius", touchstrip.DefaultProbeRadius)
	v.SetDefault("panel.sample_count", touchstrip.DefaultSampleCount)
	v.SetDefault("panel.size", 1080.0)
	v.SetDefault("panel.enlarged", false)
	v.SetDefault("panel.debug", false)
	v.SetDefault("serial.port", "")
	v.SetDefault("serial.baud", sensor.DefaultBaud)
	v.SetDefault("serial.interval", sensor.DefaultInterval)
	v.SetDefault("ring.enabled", false)
	v.SetDefault("viewport.x", 0.0)
	v.SetDefault("viewport.y", 0.0)
	v.SetDefault("viewport.scale", 0.0)
	v.SetDefault("viewport.rotation", 0.0)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TOUCHSTRIP_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "touchstrip"))
		v.SetConfigName("touchstrip")
	}

	v.SetEnvPrefix("TOUCHSTRIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Panel.Size <= 0 {
		return Config{}, fmt.Errorf("config: panel.size must be positive, got %v", c.Panel.Size)
	}
	return c, nil
}

// Zones returns the catalog input: the custom zones if any are configured,
// otherwise the standard layout at Panel.Size.
func (c Config) Zones() ([]touchstrip.Zone, error) {
	if len(c.Layout.Zones) == 0 {
		return layout.Standard(c.Panel.Size), nil
	}
	zones := make([]touchstrip.Zone, 0, len(c.Layout.Zones))
	for i, zc := range c.Layout.Zones {
		button := zc.Button
		if button == "" {
			button = zc.Name
		}
		tag, err := sensor.ParseButton(strings.ToUpper(button))
		if err != nil {
			return nil, fmt.Errorf("layout zone %d: %w", i, err)
		}
		shape, err := polygon(zc.Shape)
		if err != nil {
			return nil, fmt.Errorf("layout zone %q shape: %w", zc.Name, err)
		}
		var enlarged touchstrip.Polygon
		if len(zc.Enlarged) > 0 {
			if enlarged, err = polygon(zc.Enlarged); err != nil {
				return nil, fmt.Errorf("layout zone %q enlarged: %w", zc.Name, err)
			}
		} else {
			enlarged = shape.Scaled(layout.EnlargeFactor)
		}
		zones = append(zones, touchstrip.Zone{
			Name:          zc.Name,
			Tag:           tag,
			Shape:         shape,
			EnlargedShape: enlarged,
		})
	}
	return zones, nil
}

func polygon(points [][]float64) (touchstrip.Polygon, error) {
	poly := make(touchstrip.Polygon, len(points))
	for i, pt := range points {
		if len(pt) != 2 {
			return nil, fmt.Errorf("vertex %d has %d coordinates, want 2", i, len(pt))
		}
		poly[i] = touchstrip.Vec2{X: pt[0], Y: pt[1]}
	}
	return poly, nil
}

// Catalog builds a catalog from Zones with the configured layout selected.
func (c Config) Catalog() (*touchstrip.Catalog, error) {
	zones, err := c.Zones()
	if err != nil {
		return nil, err
	}
	cat, err := touchstrip.NewCatalog(zones)
	if err != nil {
		return nil, err
	}
	cat.SetLayout(c.Panel.Enlarged)
	return cat, nil
}

// RingKeys returns the ring mapping by button value. Without configured
// keys it is sensor.RingKeys.
func (c Config) RingKeys() (map[touchstrip.ButtonValue]string, error) {
	if len(c.Ring.Keys) == 0 {
		return sensor.RingKeys(), nil
	}
	keys := make(map[touchstrip.ButtonValue]string, len(c.Ring.Keys))
	for name, key := range c.Ring.Keys {
		// viper lower-cases map keys.
		tag, err := sensor.ParseButton(strings.ToUpper(name))
		if err != nil {
			return nil, fmt.Errorf("ring keys: %w", err)
		}
		keys[tag] = key
	}
	return keys, nil
}

// Apply copies the hit-testing settings onto p.
func (c Config) Apply(p *touchstrip.Panel) {
	p.SetProbeRadius(c.Panel.ProbeRadius)
	p.SetSampleCount(c.Panel.SampleCount)
	p.SetDebugMode(c.Panel.Debug)
	p.SetLayout(c.Panel.Enlarged)
}

// NewViewport returns the configured viewport for a window of the given
// size.
func (c Config) NewViewport(screenW, screenH int) *touchstrip.Viewport {
	if c.Viewport.Scale == 0 {
		vp := touchstrip.FitViewport(float64(screenW), float64(screenH), c.Panel.Size)
		vp.Rotation = c.Viewport.Rotation
		return vp
	}
	vp := touchstrip.NewViewport(c.Viewport.X, c.Viewport.Y, c.Viewport.Scale)
	vp.Rotation = c.Viewport.Rotation
	return vp
}
