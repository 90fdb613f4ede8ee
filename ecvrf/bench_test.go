package ecvrf_test

import (
	"fmt"
	"testing"

	"github.com/mangekyou-network/kamui/ecvrf"
	"github.com/mangekyou-network/kamui/internal/testdata"
)

var alphaSizes = []int{32, 1 << 10, 64 << 10}

func sizeName(n int) string {
	if n >= 1<<10 {
		return fmt.Sprintf("%dKiB", n>>10)
	}
	return fmt.Sprintf("%dB", n)
}

func BenchmarkProve(b *testing.B) {
	drbg := testdata.New("bench prove")
	kp, err := ecvrf.Generate(drbg.Reader())
	if err != nil {
		b.Fatalf("Generate: %v", err)
	}

	for _, size := range alphaSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			alpha := drbg.Data(size)
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := kp.Prove(alpha); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	drbg := testdata.New("bench verify")
	kp, err := ecvrf.Generate(drbg.Reader())
	if err != nil {
		b.Fatalf("Generate: %v", err)
	}

	for _, size := range alphaSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			alpha := drbg.Data(size)
			proof, err := kp.Prove(alpha)
			if err != nil {
				b.Fatalf("Prove: %v", err)
			}

			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				if err := ecvrf.Verify(kp.Public, alpha, proof); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	drbg := testdata.New("bench generate")
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ecvrf.Generate(drbg.Reader()); err != nil {
			b.Fatal(err)
		}
	}
}
