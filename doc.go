// Package networth computes a household's consolidated net worth from
// heterogeneous multi-currency holdings.
//
// The engine is a pure function of its inputs: Compute turns holdings,
// exchange rates and crypto spot prices into a canonical EUR-denominated
// ComputedPortfolio, ComputeReturn measures change against the historical
// snapshot series, AnalyzeAllocation measures drift against target sleeve
// weights, and BuildExportRows flattens the result into a tabular export.
// No component retains state between calls, no call performs I/O, and no
// failure mode exists inside the engine: invalid or missing inputs
// degrade to well-defined zero or pass-through values.
package networth
