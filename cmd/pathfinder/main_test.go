// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/internal/planner"
	"github.com/katalvlaran/pathfinder/internal/report"
	"github.com/katalvlaran/pathfinder/network"
)

// runCLI executes run with the given stdin and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), strings.NewReader(stdin), &out, &errOut, append(args, "--color", "never"))

	return out.String(), errOut.String(), err
}

func TestRun_DemoIsDefault(t *testing.T) {
	out, logs, err := runCLI(t, "")
	require.NoError(t, err)

	assert.Contains(t, out, "🗺️  PathFinder - Demo Mode")
	assert.Contains(t, out, "  • Warehouse (0, 0)")
	assert.Contains(t, out, "🚚 Finding shortest route from Warehouse to Airport...")
	assert.Contains(t, out, "✅ Route found! Total distance: 7.3 km")
	assert.Contains(t, out, "📍 Path: Warehouse → Mall → Airport")
	assert.Contains(t, out, "📍 Path: Hospital → Downtown → Park → Mall")
	assert.Contains(t, out, "Total distance: 4.5 km")
	assert.Contains(t, out, "Total distance: 7.0 km")
	assert.Contains(t, out, "🎯 Algorithm Analysis:")
	assert.Contains(t, logs, "network loaded")

	short, _, err := runCLI(t, "", "-d")
	require.NoError(t, err)
	assert.Equal(t, strings.Count(out, "✅"), strings.Count(short, "✅"))
}

func TestRun_Route(t *testing.T) {
	out, _, err := runCLI(t, "", "route", "--from", "Hospital", "--to", "Mall", "--frontier", "heap")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Route found! Total distance: 6.1 km")
	assert.Contains(t, out, "🔀 Fewest stops (2): Hospital → Station → Mall")
	assert.Contains(t, out, "📍 Path: Hospital → Downtown → Park → Mall")
	assert.Contains(t, out, "   1. Hospital → Downtown  1.8 km")
}

func TestRun_RouteUnknownLocation(t *testing.T) {
	_, _, err := runCLI(t, "", "route", "-f", "Moon", "-t", "Mall")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Moon")
}

func TestRun_Interactive(t *testing.T) {
	stdin := "Moon\nWarehouse\nAtlantis\nWarehouse\nAirport\n  QUIT  \nHospital\n"
	out, _, err := runCLI(t, stdin, "-i")
	require.NoError(t, err)

	assert.Contains(t, out, "🗺️  PathFinder - Shortest Route Calculator")
	assert.Contains(t, out, `❌ Location "Moon" not found. Please try again.`)
	assert.Contains(t, out, `❌ Location "Atlantis" not found. Please try again.`)
	assert.Contains(t, out, "✅ Route found! Total distance: 7.3 km")
	assert.True(t, strings.HasSuffix(out, "👋 Goodbye!\n"))
	assert.NotContains(t, out, "from Hospital", "input after quit is ignored")
}

func TestRun_InteractiveEOF(t *testing.T) {
	out, _, err := runCLI(t, "Park\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter destination location: ")
	assert.Contains(t, out, "👋 Goodbye!")
}

func TestRun_NetworkFileAndExport(t *testing.T) {
	n := &network.Network{
		Name: "harbor",
		Locations: []network.Location{
			{Name: "Dock", X: 0, Y: 0},
			{Name: "Pier", X: 1, Y: 0},
			{Name: "Lighthouse", X: 5, Y: 5},
		},
		Roads: []network.Road{{From: "Dock", To: "Pier", Km: 0.4}},
	}
	path := filepath.Join(t.TempDir(), "harbor.hcl")
	require.NoError(t, os.WriteFile(path, network.Encode(n), 0o644))

	out, _, err := runCLI(t, "", "--network", path)
	require.NoError(t, err)
	assert.Contains(t, out, "disconnected parts")
	assert.Contains(t, out, "❌ No route found from Dock to Lighthouse")

	out, _, err = runCLI(t, "", "export", "-n", path)
	require.NoError(t, err)
	parsed, err := network.Parse([]byte(out), "export.hcl")
	require.NoError(t, err)
	assert.Equal(t, n, parsed)
}

func TestRun_UsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":  {"--teleport"},
		"unknown mode":  {"fly"},
		"extra args":    {"route", "A", "B"},
		"both shortcut": {"-d", "-i"},
		"route no to":   {"route", "--from", "Park"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCLI(t, "", args...)
			var exitErr *exitError
			require.True(t, errors.As(err, &exitErr), "%v", err)
			assert.Equal(t, 2, exitErr.code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	_, usage, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, usage, "Usage: pathfinder")
	assert.Contains(t, usage, "--frontier")
}

func TestRun_MissingNetworkFile(t *testing.T) {
	_, _, err := runCLI(t, "", "--network", filepath.Join(t.TempDir(), "none.hcl"))
	assert.Error(t, err)
}

func TestAnswer_LocationDroppedByReload(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), logging.Discard())
	p, err := planner.New(ctx, network.Sample())
	require.NoError(t, err)

	// The user typed both names while they existed; a reload then removed Airport.
	smaller := network.Sample()
	smaller.Locations = smaller.Locations[:2]
	smaller.Roads = smaller.Roads[:1]
	require.NoError(t, p.Reload(ctx, smaller))

	var out bytes.Buffer
	require.NoError(t, answer(ctx, report.New(&out, false), p, "Warehouse", "Airport"))
	assert.Contains(t, out.String(), `❌ Location "Airport" not found. Please try again.`)

	out.Reset()
	require.NoError(t, answer(ctx, report.New(&out, false), p, "Warehouse", "Downtown"))
	assert.Contains(t, out.String(), "✅ Route found! Total distance: 3.5 km")
}
