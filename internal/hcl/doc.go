// Package hcl provides the HCL implementation of config.Loader. It parses
// scenario files, evaluates their expressions and translates the decoded
// blocks into the format-agnostic config.Model.
//
// Expressions may call a small set of functions (min, max, upper, lower)
// so that maps can be written with computed values.
package hcl
