package trainer

import "strings"

import "github.com/neurlang/mlp/net/feedforward"

// Resume loads previously saved weights into net when resume is set. Files
// ending in .lzw are read compressed.
func Resume(net *feedforward.FeedforwardNetwork, resume bool, name string) error {
	if !resume || name == "" {
		return nil
	}
	if strings.HasSuffix(name, ".lzw") {
		return net.ReadCompressedWeightsFromFile(name)
	}
	return net.ReadWeightsFromFile(name)
}

// Save writes the weights of net to name, compressed if name ends in .lzw.
func Save(net *feedforward.FeedforwardNetwork, name string) error {
	if name == "" {
		return nil
	}
	if strings.HasSuffix(name, ".lzw") {
		return net.WriteCompressedWeightsToFile(name)
	}
	return net.WriteWeightsToFile(name)
}
