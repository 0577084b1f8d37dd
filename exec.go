package scanicon

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// DefaultSizes are the store icon edge lengths, in pixels.
var DefaultSizes = []int{512, 256, 192, 144, 128, 96, 72, 48}

// Batch renders one icon per size into OutDir.
type Batch struct {
	Renderer *Renderer
	OutDir   string
	Sizes    []int
	Workers  int
	Format   Format
}

// Result holds the outcome of rendering and writing a single size.
type Result struct {
	Size int
	Path string
	Err  error

	index int
}

// Summary splits the results of a batch, in the order the sizes were requested.
type Summary struct {
	Written []Result
	Failed  []Result
}

// OK reports whether every size was written.
func (s Summary) OK() bool { return len(s.Failed) == 0 }

// job is a size together with its position in the request.
type job struct {
	index int
	size  int
}

// Run starts the workers and streams one Result per requested size, in
// completion order. The channel is closed once every size is handled or done
// is closed. A failing size never stops the others.
func (b *Batch) Run(done <-chan struct{}) <-chan Result {
	res := make(chan Result)

	renderer := b.Renderer
	if renderer == nil {
		renderer = NewRenderer()
	}
	workers := b.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}
	if workers > len(b.Sizes) {
		workers = len(b.Sizes)
	}

	// An unusable format or output directory fails every size, and each one is still reported.
	format, setupErr := b.prepare()

	jobs := b.produce(done)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			b.consume(done, jobs, renderer, format, setupErr, res)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(res)
		wg.Wait()
	}()

	return res
}

// Execute runs the batch to completion and summarizes it.
func (b *Batch) Execute() Summary {
	done := make(chan struct{})
	defer close(done)

	var results []Result
	for r := range b.Run(done) {
		results = append(results, r)
	}
	return Summarize(results)
}

// Summarize orders the results as the sizes were requested and splits them.
func Summarize(results []Result) Summary {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].index < sorted[j].index })

	var s Summary
	for _, r := range sorted {
		if r.Err != nil {
			s.Failed = append(s.Failed, r)
		} else {
			s.Written = append(s.Written, r)
		}
	}
	return s
}

// produce sends every requested size on the returned channel.
// It terminates in case done channel is closed.
func (b *Batch) produce(done <-chan struct{}) <-chan job {
	jobs := make(chan job)
	go func() {
		defer close(jobs)
		for i, size := range b.Sizes {
			select {
			case <-done:
				return
			case jobs <- job{index: i, size: size}:
			}
		}
	}()
	return jobs
}

// consume renders the sizes received on jobs and sends the results on res.
func (b *Batch) consume(
	done <-chan struct{},
	jobs <-chan job,
	renderer *Renderer,
	format Format,
	setupErr error,
	res chan<- Result,
) {
	for j := range jobs {
		r := Result{Size: j.size, index: j.index}
		if setupErr != nil {
			r.Err = setupErr
		} else {
			r.Path, r.Err = b.write(renderer, format, j.size)
		}

		select {
		case <-done:
			return
		case res <- r:
		}
	}
}

// prepare checks the output format and creates the output directory.
func (b *Batch) prepare() (Format, error) {
	format, err := ParseFormat(string(b.Format))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(b.outDir(), 0755); err != nil {
		return "", fmt.Errorf("unable to create the output directory: %w", err)
	}
	return format, nil
}

func (b *Batch) outDir() string {
	if b.OutDir == "" {
		return "."
	}
	return b.OutDir
}

// write renders one size and stores it under its deterministic name.
func (b *Batch) write(renderer *Renderer, format Format, size int) (string, error) {
	img, err := renderer.Render(size)
	if err != nil {
		return "", err
	}
	path := filepath.Join(b.outDir(), IconName(size, format))
	if err := WriteFile(path, img, format); err != nil {
		return path, err
	}
	return path, nil
}
