// Package xor provides the exclusive-or problem, the smallest data set a single
// layer cannot learn but a network with a sigmoid hidden layer can.
package xor
