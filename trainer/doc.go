// Package trainer trains a network on a training set by backpropagation with
// momentum, reports on training, unseen and validation sets, and stops early
// once the validation error no longer falls.
package trainer
