package trainer

import "io"
import "log"
import "os"

import "github.com/pkg/errors"

// HyperParameters configures a Trainer.
type HyperParameters struct {
	Epochs    int     // epochs run by Learn
	LearnRate float64 // learning rate used by Learn
	Momentum  float64 // momentum used by Learn

	CheckEvery  int // epochs summed into one validation window
	ReportLines int // number of progress lines in a long run

	l *log.Logger
}

// DefaultHyperParameters checks the validation set every 10 epochs and reports 10 lines per run.
func DefaultHyperParameters() HyperParameters {
	return HyperParameters{
		Epochs:      1000,
		LearnRate:   0.4,
		Momentum:    0.7,
		CheckEvery:  10,
		ReportLines: 10,
	}
}

// SetLogger logs training progress to w.
func (h *HyperParameters) SetLogger(w io.Writer) {
	h.l = log.New(w, "", log.LstdFlags)
}

// SetLogFile appends training progress to the file called filename.
func (h *HyperParameters) SetLogFile(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	h.SetLogger(outfile)
	return nil
}

func (h *HyperParameters) printf(format string, v ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, v...)
	}
}

func (h *HyperParameters) validate() error {
	if h.CheckEvery <= 0 {
		return errors.Errorf("CheckEvery must be positive, got %d", h.CheckEvery)
	}
	if h.ReportLines <= 0 {
		return errors.Errorf("ReportLines must be positive, got %d", h.ReportLines)
	}
	return nil
}
