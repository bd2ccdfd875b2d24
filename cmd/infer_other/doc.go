// Package main provides a demo program which loads weights saved by train_other
// and reports the performance on the data sets without training.
package main
