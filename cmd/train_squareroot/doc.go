// Package main provides a demo program training a network with a sigmoid hidden
// layer and a linear output layer to approximate the square root on [0, 1].
package main
