// Command fftbench runs a forward+inverse round trip at a chosen size and
// reports elapsed time, the way andewx-gofft/examples/example.go exercises
// its library's FFT/IFFT pair end to end.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/okfft/splitfft"
)

func main() {
	size := flag.Int("n", 1<<16, "transform size (power of two)")
	iters := flag.Int("iters", 10, "number of forward+inverse round trips to time")
	realMode := flag.Bool("real", false, "benchmark the real-to-complex transform instead of complex-to-complex")
	flag.Parse()

	if *realMode {
		benchReal(*size, *iters)
		return
	}
	benchComplex(*size, *iters)
}

func benchComplex(n, iters int) {
	fwd, err := fft.CreatePlan(n, fft.Forward)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	inv, err := fft.CreatePlan(n, fft.Inverse)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	data := make([]complex64, n)
	for i := range data {
		data[i] = complex64(complex(math.Sin(float64(i)*0.1), 0))
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		fwd.Execute(data)
		inv.Execute(data)
	}
	elapsed := time.Since(start)

	fmt.Printf("complex N=%d width=%s: %d round trips in %v (%v/op)\n",
		n, fwd.VectorWidth(), iters, elapsed, elapsed/time.Duration(iters))
}

func benchReal(n, iters int) {
	fwd, err := fft.CreatePlanReal(n, fft.Forward)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	inv, err := fft.CreatePlanReal(n, fft.Inverse)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	buf := fft.NewBuffer(n)
	for i := 0; i < n; i++ {
		buf.Data()[i] = float32(math.Sin(float64(i) * 0.1))
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		fwd.ExecuteReal(buf)
		inv.ExecuteReal(buf)
	}
	elapsed := time.Since(start)

	fmt.Printf("real N=%d width=%s: %d round trips in %v (%v/op)\n",
		n, fwd.VectorWidth(), iters, elapsed, elapsed/time.Duration(iters))
}
