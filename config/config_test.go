package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phanxgames/touchstrip"
	"github.com/phanxgames/touchstrip/sensor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "touchstrip.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOUCHSTRIP_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, touchstrip.DefaultProbeRadius, c.Panel.ProbeRadius)
	require.Equal(t, touchstrip.DefaultSampleCount, c.Panel.SampleCount)
	require.Equal(t, 1080.0, c.Panel.Size)
	require.False(t, c.Panel.Enlarged)
	require.Equal(t, sensor.DefaultBaud, c.Serial.Baud)
	require.Equal(t, sensor.DefaultInterval, c.Serial.Interval)
	require.Empty(t, c.Serial.Port)

	zones, err := c.Zones()
	require.NoError(t, err)
	require.Len(t, zones, sensor.NumButtons)

	keys, err := c.RingKeys()
	require.NoError(t, err)
	require.Equal(t, "w", keys[sensor.A1])
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[panel]
probe_radius = 4.5
sample_count = 3
size = 200
enlarged = true

[serial]
port = "/dev/ttyS9"
baud = 115200
interval = "20ms"

[ring]
enabled = true
[ring.keys]
A1 = "up"
A5 = "down"
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4.5, c.Panel.ProbeRadius)
	require.Equal(t, 3, c.Panel.SampleCount)
	require.Equal(t, 200.0, c.Panel.Size)
	require.True(t, c.Panel.Enlarged)
	require.Equal(t, "/dev/ttyS9", c.Serial.Port)
	require.Equal(t, 115200, c.Serial.Baud)
	require.Equal(t, 20*time.Millisecond, c.Serial.Interval)
	require.True(t, c.Ring.Enabled)

	keys, err := c.RingKeys()
	require.NoError(t, err)
	require.Equal(t, map[touchstrip.ButtonValue]string{sensor.A1: "up", sensor.A5: "down"}, keys)

	cat, err := c.Catalog()
	require.NoError(t, err)
	require.True(t, cat.Enlarged())
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
[panel]
sample_count = 3
`)
	t.Setenv("TOUCHSTRIP_PANEL_SAMPLE_COUNT", "7")
	t.Setenv("TOUCHSTRIP_SERIAL_PORT", "COM4")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, c.Panel.SampleCount)
	require.Equal(t, "COM4", c.Serial.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsBadSize(t *testing.T) {
	path := writeConfig(t, `
[panel]
size = 0
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestCustomZones(t *testing.T) {
	path := writeConfig(t, `
[[layout.zones]]
name = "left"
button = "C2"
shape = [[0, 0], [50, 0], [50, 100], [0, 100]]

[[layout.zones]]
name = "C1"
shape = [[50, 0], [100, 0], [100, 100], [50, 100]]
enlarged = [[40, 0], [100, 0], [100, 100], [40, 100]]
`)
	c, err := Load(path)
	require.NoError(t, err)

	zones, err := c.Zones()
	require.NoError(t, err)
	require.Len(t, zones, 2)
	require.Equal(t, "left", zones[0].Name)
	require.Equal(t, sensor.C2, zones[0].Tag)
	require.Len(t, zones[0].EnlargedShape, 4)
	require.Equal(t, sensor.C1, zones[1].Tag)
	require.Equal(t, touchstrip.Vec2{X: 40, Y: 0}, zones[1].EnlargedShape[0])

	cat, err := c.Catalog()
	require.NoError(t, err)
	require.Equal(t, touchstrip.ZoneSetOf(0), cat.HitTest(touchstrip.Vec2{X: 25, Y: 50}, 0))
	require.Equal(t, touchstrip.ZoneSetOf(1), cat.HitTest(touchstrip.Vec2{X: 75, Y: 50}, 0))
}

func TestCustomZoneErrors(t *testing.T) {
	tests := []struct {
		name string
		zone ZoneConfig
	}{
		{"unknown button", ZoneConfig{Name: "Z9", Shape: [][]float64{{0, 0}, {1, 0}, {0, 1}}}},
		{"short vertex", ZoneConfig{Name: "A1", Shape: [][]float64{{0, 0}, {1}, {0, 1}}}},
		{"bad enlarged", ZoneConfig{Name: "A1", Shape: [][]float64{{0, 0}, {1, 0}, {0, 1}}, Enlarged: [][]float64{{0, 0, 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Panel: PanelConfig{Size: 100}, Layout: LayoutConfig{Zones: []ZoneConfig{tt.zone}}}
			_, err := c.Zones()
			require.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	c := Config{Panel: PanelConfig{ProbeRadius: 2, SampleCount: 4, Size: 1080, Enlarged: true}}
	cat, err := c.Catalog()
	require.NoError(t, err)
	p := touchstrip.NewPanel(cat)
	c.Apply(p)
	require.True(t, p.Catalog().Enlarged())
}

func TestNewViewport(t *testing.T) {
	c := Config{Panel: PanelConfig{Size: 1080}}
	vp := c.NewViewport(540, 540)
	require.InDelta(t, 0.5, vp.Scale, 1e-9)

	c.Viewport = ViewportConfig{X: 10, Y: 20, Scale: 2}
	vp = c.NewViewport(540, 540)
	p := vp.ScreenToPanel(30, 40)
	require.InDelta(t, 10, p.X, 1e-9)
	require.InDelta(t, 10, p.Y, 1e-9)
}
