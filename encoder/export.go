package encoder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"assetgen/log"
)

// Job is one waveform to encode into one output file.
type Job struct {
	Name    string
	Samples []float64
	File    string // filename within the output dir
}

// ExportAll encodes every job into dir, at most parallel at a time.
// The jobs share no state, so parallel export is safe; the default of
// one preserves the sequential behavior. A job that fails to encode is
// reported and skipped while the rest of the batch continues. If the
// encoder binary goes missing mid-run the batch stops and the error is
// returned; nothing further could succeed. Returns the count of
// skipped jobs.
func ExportAll(dir string, enc Encoder, jobs []Job, parallel int) (int, error) {
	if parallel < 1 {
		parallel = 1
	}

	var failed atomic.Int32
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(parallel)

	for _, job := range jobs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			path := filepath.Join(dir, job.File)
			if err := enc.Encode(ToPCM(job.Samples), path); err != nil {
				if errors.Is(err, ErrMissing) {
					return err
				}
				failed.Add(1)
				log.Warnf("skipping %s: %v", job.File, err)
				return nil
			}
			size := 0
			if fi, err := os.Stat(path); err == nil {
				size = int(fi.Size())
			}
			log.Exported(job.File, size)
			return nil
		})
	}

	err := g.Wait()
	return int(failed.Load()), err
}
