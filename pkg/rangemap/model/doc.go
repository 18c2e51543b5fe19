// Package model provides the data structures shared by the rangemap packages.
// It defines the half-open intervals that flow through a pipeline, the translation rules
// grouped into stages, and the hooks a pipeline option implements.
package model
