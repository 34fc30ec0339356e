// SPDX-License-Identifier: MIT
//
// hcl.go — reading and writing networks as HCL documents.

package network

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Length units available to road expressions, in kilometres.
const (
	unitKm   = 1.0
	unitMile = 1.609344
	unitM    = 0.001
)

// hclDocument is the top-level shape of a network file.
type hclDocument struct {
	Network hclNetwork `hcl:"network,block"`
}

type hclNetwork struct {
	Name      string        `hcl:"name,label"`
	Locations []hclLocation `hcl:"location,block"`
	Roads     []hclRoad     `hcl:"road,block"`
}

type hclLocation struct {
	Name string  `hcl:"name,label"`
	X    float64 `hcl:"x,optional"`
	Y    float64 `hcl:"y,optional"`
}

type hclRoad struct {
	From string  `hcl:"from"`
	To   string  `hcl:"to"`
	Km   float64 `hcl:"km"`
}

// evalContext exposes unit variables and a few numeric functions to
// attribute expressions, e.g. km = max(1.2 * mile, 2).
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"km":   cty.NumberFloatVal(unitKm),
			"mile": cty.NumberFloatVal(unitMile),
			"m":    cty.NumberFloatVal(unitM),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
		},
	}
}

// Parse decodes one network document. filename only labels diagnostics.
// Every syntax, decode or validation problem is reported wrapping ErrInvalidNetwork.
func Parse(src []byte, filename string) (*Network, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrInvalidNetwork, filename, diags.Error())
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, evalContext(), &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrInvalidNetwork, filename, diags.Error())
	}

	n := &Network{
		Name:      doc.Network.Name,
		Locations: make([]Location, 0, len(doc.Network.Locations)),
		Roads:     make([]Road, 0, len(doc.Network.Roads)),
	}
	for _, l := range doc.Network.Locations {
		n.Locations = append(n.Locations, Location{Name: l.Name, X: l.X, Y: l.Y})
	}
	for _, r := range doc.Network.Roads {
		n.Roads = append(n.Roads, Road{From: r.From, To: r.To, Km: r.Km})
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return n, nil
}

// Load reads and parses the network file at path.
func Load(path string) (*Network, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// Encode renders n in the format accepted by Parse. Lengths are written as
// plain kilometre numbers.
func Encode(n *Network) []byte {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock("network", []string{n.Name})
	body := block.Body()

	for _, loc := range n.Locations {
		lb := body.AppendNewBlock("location", []string{loc.Name}).Body()
		lb.SetAttributeValue("x", cty.NumberFloatVal(loc.X))
		lb.SetAttributeValue("y", cty.NumberFloatVal(loc.Y))
	}
	if len(n.Locations) > 0 && len(n.Roads) > 0 {
		body.AppendNewline()
	}
	for _, r := range n.Roads {
		rb := body.AppendNewBlock("road", nil).Body()
		rb.SetAttributeValue("from", cty.StringVal(r.From))
		rb.SetAttributeValue("to", cty.StringVal(r.To))
		rb.SetAttributeValue("km", cty.NumberFloatVal(r.Km))
	}

	return hclwrite.Format(f.Bytes())
}
