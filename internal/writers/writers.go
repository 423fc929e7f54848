// internal/writers/writers.go
package writers

import (
	"errors"
	"io"
	"syscall"

	"vcfy-core/kmer"
	"vcfy/internal/output"
	"vcfy/internal/vcf"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) closing early is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// StartVCFWriter spins up a writer goroutine that emits records in
// arrival order. The caller writes the header before starting it and
// closes the channel when done; the error channel yields once.
func StartVCFWriter(out io.Writer, bufSize int) (chan<- vcf.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan vcf.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue // drain
			}
			err = vcf.WriteRecord(out, rec)
		}
		errCh <- err
	}()

	return in, errCh
}

// StartReportWriter streams window counts through the CSV report
// emitter. The header row is written before the first count.
func StartReportWriter(out io.Writer, k int, d output.Dialect, bufSize int) (chan<- kmer.WindowCount, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan kmer.WindowCount, bufSize)
	errCh := make(chan error, 1)

	go func() {
		rw, err := output.NewReportWriter(out, k, d)
		for wc := range in {
			if err != nil {
				continue // drain
			}
			err = rw.Write(wc)
		}
		if err == nil {
			err = rw.Flush()
		}
		errCh <- err
	}()

	return in, errCh
}
