package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/mlp/datasets"
import "github.com/neurlang/mlp/datasets/other"
import "github.com/neurlang/mlp/layer/dense"
import "github.com/neurlang/mlp/net/feedforward"
import "github.com/neurlang/mlp/trainer"

func check(err error) {
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

// load reads the data set from name, or returns the built in one when name is empty
func load(name string, builtin func() *datasets.Dataset) *datasets.Dataset {
	if name == "" {
		return builtin()
	}
	d, err := datasets.Load(name)
	check(err)
	return d
}

func main() {
	var h = trainer.DefaultHyperParameters()
	flag.IntVar(&h.Epochs, "epochs", 1000, "number of epochs")
	flag.Float64Var(&h.LearnRate, "rate", 0.3, "learning rate")
	flag.Float64Var(&h.Momentum, "momentum", 0.5, "momentum")
	hidden := flag.Int("hidden", 2, "number of hidden units")
	linear := flag.Bool("linear", false, "use a linear output layer")
	weights := flag.String("weights", "", "initial weights, randomized from -seed when empty")
	seed := flag.Int64("seed", 1, "random seed")
	trainFile := flag.String("train", "", "training set file, built in when empty")
	unseenFile := flag.String("unseen", "", "unseen set file, built in when empty")
	validFile := flag.String("valid", "", "validation set file, built in when empty")
	noValid := flag.Bool("novalid", false, "train without a validation set")
	resume := flag.Bool("resume", false, "start from the weights in -save")
	save := flag.String("save", "", "weight file, compressed if it ends in .lzw")
	table := flag.Bool("table", false, "print every unseen example after training")
	verbose := flag.Bool("v", false, "log progress to standard error")
	flag.Parse()

	if *verbose {
		h.SetLogger(os.Stderr)
		println(trainer.HostInfo())
	}

	train := load(*trainFile, other.Train)
	unseen := load(*unseenFile, other.Unseen)
	var valid *datasets.Dataset
	if !*noValid {
		valid = load(*validFile, other.Valid)
	}

	output := dense.Sigmoid
	if *linear {
		output = dense.Linear
	}
	net, err := feedforward.New(output, train.NumInputs(), *hidden, train.NumOutputs())
	check(err)
	if *weights != "" {
		check(net.SetWeights(*weights))
	} else {
		net.Randomize(*seed)
	}
	check(trainer.Resume(net, *resume, *save))

	t, err := trainer.New(net, train, unseen, valid, h)
	check(err)

	present, err := t.Present()
	check(err)
	fmt.Println(present)
	fmt.Println("Weights " + net.DumpWeights())

	report, err := t.Learn()
	check(err)
	fmt.Println(report)

	present, err = t.Present()
	check(err)
	fmt.Println(present)
	fmt.Println("Weights " + net.DumpWeights())

	check(trainer.Save(net, *save))
	if *table {
		fmt.Print(unseen.Table())
	}
}
