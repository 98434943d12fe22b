// Package params collects the six simulation inputs from a source: a fixed
// value, a line prompt, a terminal form, or a YAML file. Every provider
// returns parameters that already passed sim.Params.Validate.
package params
