// Package main provides a demo program training a network with a sigmoid hidden
// layer on a small two class problem whose classes are not linearly separable.
// The validation set stops training once its error stops falling.
package main
