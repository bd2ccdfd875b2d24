package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/mlp/datasets/other"
import "github.com/neurlang/mlp/layer/dense"
import "github.com/neurlang/mlp/net/feedforward"
import "github.com/neurlang/mlp/trainer"

func main() {
	hidden := flag.Int("hidden", 2, "number of hidden units")
	linear := flag.Bool("linear", false, "the output layer is linear")
	load := flag.String("load", "", "weight file written by train_other")
	flag.Parse()

	if *load == "" {
		println("-load is required")
		os.Exit(2)
	}
	output := dense.Sigmoid
	if *linear {
		output = dense.Linear
	}
	net := feedforward.MustNew(output, 2, *hidden, 2)
	if err := trainer.Resume(net, true, *load); err != nil {
		println(err.Error())
		os.Exit(1)
	}
	unseen := other.Unseen()
	t, err := trainer.New(net, other.Train(), unseen, other.Valid(), trainer.DefaultHyperParameters())
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	present, err := t.Present()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	fmt.Println(present)
	fmt.Print(unseen.Table())
}
