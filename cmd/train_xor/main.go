package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/mlp/datasets/xor"
import "github.com/neurlang/mlp/layer/dense"
import "github.com/neurlang/mlp/net/feedforward"
import "github.com/neurlang/mlp/trainer"

func check(err error) {
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func main() {
	var h = trainer.DefaultHyperParameters()
	flag.IntVar(&h.Epochs, "epochs", 1000, "number of epochs")
	flag.Float64Var(&h.LearnRate, "rate", 0.4, "learning rate")
	flag.Float64Var(&h.Momentum, "momentum", 0.7, "momentum")
	weights := flag.String("weights", xor.Weights, "initial weights, randomized from -seed when empty")
	seed := flag.Int64("seed", 1, "random seed")
	save := flag.String("save", "", "write the trained weights to this file, compressed if it ends in .lzw")
	table := flag.Bool("table", false, "print every pattern after training")
	verbose := flag.Bool("v", false, "log progress to standard error")
	flag.Parse()

	if *verbose {
		h.SetLogger(os.Stderr)
		println(trainer.HostInfo())
	}

	net := feedforward.MustNew(dense.Sigmoid, 2, 2, 1)
	if *weights != "" {
		check(net.SetWeights(*weights))
	} else {
		net.Randomize(*seed)
	}

	train := xor.Dataset()
	t, err := trainer.New(net, train, xor.Dataset(), nil, h)
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
		fmt.Print(train.Table())
	}
}
