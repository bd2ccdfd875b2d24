package feedforward

import "compress/lzw"
import "io"
import "os"

// WriteWeightsToFile writes the weight string to a file
func (f FeedforwardNetwork) WriteWeightsToFile(name string) error {
	return writeFile(name, f.WriteWeights)
}

// WriteWeights writes the weight string followed by a new line
func (f FeedforwardNetwork) WriteWeights(w io.Writer) error {
	_, err := io.WriteString(w, f.DumpWeights()+"\n")
	return err
}

// WriteCompressedWeightsToFile writes the weight string to a lzw file
func (f FeedforwardNetwork) WriteCompressedWeightsToFile(name string) error {
	return writeFile(name, f.WriteCompressedWeights)
}

// WriteCompressedWeights writes the weight string to a writer, lzw compressed
func (f FeedforwardNetwork) WriteCompressedWeights(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	err := f.WriteWeights(lw)
	if err != nil {
		lw.Close()
		return err
	}
	return lw.Close()
}

// ReadWeightsFromFile reads the weight string from a file
func (f *FeedforwardNetwork) ReadWeightsFromFile(name string) error {
	return readFile(name, f.ReadWeights)
}

// ReadWeights reads the weight string from a reader
func (f *FeedforwardNetwork) ReadWeights(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return f.SetWeights(string(data))
}

// ReadCompressedWeightsFromFile reads the weight string from a lzw file
func (f *FeedforwardNetwork) ReadCompressedWeightsFromFile(name string) error {
	return readFile(name, f.ReadCompressedWeights)
}

// ReadCompressedWeights reads the lzw compressed weight string from a reader
func (f *FeedforwardNetwork) ReadCompressedWeights(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	err := f.ReadWeights(lr)
	lr.Close()
	return err
}

func writeFile(name string, write func(io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

func readFile(name string, read func(io.Reader) error) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	err = read(file)
	file.Close()
	return err
}
