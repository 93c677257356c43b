// Package builder defines shared constants used by the constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomLinks is the canonical name for the RandomLinks constructor.
	MethodRandomLinks = "RandomLinks"
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Validation Minimums and Defaults
//-----------------------------------------------------------------------------

const (
	// MinLinkVertices is the smallest population RandomLinks can pick two distinct vertices from.
	MinLinkVertices = 2

	// DefaultRounds is the number of random links made by the demo driver.
	DefaultRounds = 5

	// swapProbability is the chance of reversing a sampled (from, to) pair.
	swapProbability = 0.5
)
