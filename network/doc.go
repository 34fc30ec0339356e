// SPDX-License-Identifier: MIT

// Package network describes delivery networks as named locations joined by
// two-way roads, and turns them into core graphs.
//
// Networks come from three places:
//   - Sample: the built-in eight-location city used by the demo.
//   - Parse / Load: HCL documents with unit variables (km, mile, m).
//   - Hand-built values of Network.
//
// Document format:
//
//	network "city" {
//	  location "Warehouse" {
//	    x = 0
//	    y = 0
//	  }
//	  location "Park" {
//	    x = 2
//	    y = 1
//	  }
//	  road {
//	    from = "Warehouse"
//	    to   = "Park"
//	    km   = 1.3 * mile
//	  }
//	}
//
// x and y are optional and default to the origin. Encode writes the same
// format back.
package network
