// Package other provides a small two-input problem with two class outputs whose
// classes are not linearly separable, split into training, unseen and validation sets.
package other
