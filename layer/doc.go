// Package layer defines the layer interface shared by leaf layers and chains,
// the error kinds raised at layer boundaries and the weight text helpers.
//
// Weights are written as whitespace separated decimals. Each leaf layer writes
// one row per output unit, bias first, then one weight per input. A chain writes
// its head first and its successor after it.
package layer
