package other

import _ "embed"

import "github.com/neurlang/mlp/datasets"

//go:embed train.txt
var trainSpec string

//go:embed unseen.txt
var unseenSpec string

//go:embed valid.txt
var validSpec string

// Train returns a fresh copy of the training set.
func Train() *datasets.Dataset {
	return datasets.MustParse(trainSpec)
}

// Unseen returns a fresh copy of the unseen set.
func Unseen() *datasets.Dataset {
	return datasets.MustParse(unseenSpec)
}

// Valid returns a fresh copy of the validation set.
func Valid() *datasets.Dataset {
	return datasets.MustParse(validSpec)
}
