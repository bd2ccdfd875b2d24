// Package main provides a demo program training a 2-2-1 sigmoid network on XOR.
// It prints the performance and weights before and after training.
package main
