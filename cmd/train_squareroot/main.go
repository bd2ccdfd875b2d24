package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/mlp/datasets/squareroot"
import "github.com/neurlang/mlp/layer/dense"
import "github.com/neurlang/mlp/net/feedforward"
import "github.com/neurlang/mlp/trainer"

func main() {
	var h = trainer.DefaultHyperParameters()
	flag.IntVar(&h.Epochs, "epochs", 500, "number of epochs")
	flag.Float64Var(&h.LearnRate, "rate", 0.1, "learning rate")
	flag.Float64Var(&h.Momentum, "momentum", 0.5, "momentum")
	hidden := flag.Int("hidden", 4, "number of hidden units")
	points := flag.Int("points", squareroot.SmallSize, "number of training points")
	seed := flag.Int64("seed", 1, "random seed")
	dstmodel := flag.String("dstmodel", "", "model destination file, compressed if it ends in .lzw")
	resume := flag.Bool("resume", false, "resume training from -dstmodel")
	flag.Parse()

	if *points < 2 {
		println("-points must be at least 2")
		os.Exit(2)
	}

	net := feedforward.MustNew(dense.Linear, 1, *hidden, 1)
	net.Randomize(*seed)
	if err := trainer.Resume(net, *resume, *dstmodel); err != nil {
		println(err.Error())
		os.Exit(1)
	}

	unseen := squareroot.Unseen(*points)
	t, err := trainer.New(net, squareroot.Train(*points), unseen, squareroot.Valid(*points), h)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	for _, step := range []func() (string, error){t.Present, t.Learn, t.Present} {
		out, err := step()
		if err != nil {
			println(err.Error())
			os.Exit(1)
		}
		fmt.Println(out)
	}
	fmt.Print(unseen.Table())

	if err := trainer.Save(net, *dstmodel); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}
