// SPDX-License-Identifier: MIT

package network

// Sample returns a fresh copy of the demo delivery network: eight locations
// and thirteen roads.
func Sample() *Network {
	return &Network{
		Name: "city",
		Locations: []Location{
			{Name: "Warehouse", X: 0, Y: 0},
			{Name: "Downtown", X: 2, Y: 3},
			{Name: "Airport", X: 5, Y: 1},
			{Name: "University", X: 3, Y: 5},
			{Name: "Hospital", X: 1, Y: 4},
			{Name: "Mall", X: 4, Y: 2},
			{Name: "Station", X: 6, Y: 4},
			{Name: "Park", X: 2, Y: 1},
		},
		Roads: []Road{
			{From: "Warehouse", To: "Downtown", Km: 3.5},
			{From: "Warehouse", To: "Park", Km: 2.1},
			{From: "Warehouse", To: "Mall", Km: 4.2},
			{From: "Downtown", To: "Hospital", Km: 1.8},
			{From: "Downtown", To: "University", Km: 2.5},
			{From: "Downtown", To: "Park", Km: 2.0},
			{From: "Park", To: "Mall", Km: 2.3},
			{From: "Mall", To: "Airport", Km: 3.1},
			{From: "Mall", To: "Station", Km: 2.8},
			{From: "Airport", To: "Station", Km: 3.5},
			{From: "University", To: "Station", Km: 3.2},
			{From: "University", To: "Hospital", Km: 2.7},
			{From: "Hospital", To: "Station", Km: 4.1},
		},
	}
}

// SampleRoutes lists the demo's delivery queries as (from, to) pairs.
func SampleRoutes() [][2]string {
	return [][2]string{
		{"Warehouse", "Airport"},
		{"Hospital", "Mall"},
		{"University", "Park"},
		{"Station", "Warehouse"},
	}
}
