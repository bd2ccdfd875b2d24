// Package squareroot provides a synthetic regression data set: points of the
// square root function on [0, 1]. Its targets are not classes, so a network with
// a linear output layer suits it best.
package squareroot
