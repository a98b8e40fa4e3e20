package rivulet_test

import (
	"math"
	"testing"

	"rivulet"
	"rivulet/pi"
)

func BenchmarkSeriesPipeline(b *testing.B) {
	workloads := []struct {
		name  string
		terms int
	}{
		{name: "leibniz/1k", terms: 1_000},
		{name: "leibniz/100k", terms: 100_000},
	}

	for _, tc := range workloads {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if got := runPipelineCase(tc.terms); math.Abs(got-math.Pi) > 4/float64(tc.terms) {
					b.Fatalf("sum drifted: %v", got)
				}
			}
		})
	}
}

func BenchmarkSeriesLoop(b *testing.B) {
	workloads := []struct {
		name  string
		terms int
	}{
		{name: "leibniz/1k", terms: 1_000},
		{name: "leibniz/100k", terms: 100_000},
	}

	for _, tc := range workloads {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if got := runLoopCase(tc.terms); math.Abs(got-math.Pi) > 4/float64(tc.terms) {
					b.Fatalf("sum drifted: %v", got)
				}
			}
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	workloads := []struct {
		name   string
		series pi.Series
		limit  int
	}{
		{name: "nilakantha/5digits", series: pi.Nilakantha(), limit: 1_000},
		{name: "leibniz/5digits", series: pi.Leibniz(), limit: 200_000},
	}

	for _, tc := range workloads {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			while := pi.Until(math.Pi, 5)
			for i := 0; i < b.N; i++ {
				if _, ok := rivulet.DetectWithin(tc.series.Partials(), while, tc.limit); !ok {
					b.Fatal("expected convergence")
				}
			}
		})
	}
}

func BenchmarkGenerator(b *testing.B) {
	workloads := []struct {
		name  string
		terms int
	}{
		{name: "odds/1k", terms: 1_000},
		{name: "odds/100k", terms: 100_000},
	}

	for _, tc := range workloads {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				last := 0.0
				for v := range rivulet.Take(pi.Odds(1), tc.terms) {
					last = v
				}
				if want := float64(2*tc.terms - 1); last != want {
					b.Fatalf("expected last odd %v, got %v", want, last)
				}
			}
		})
	}
}

func runPipelineCase(terms int) float64 {
	return pi.Leibniz().Sum(terms)
}

func runLoopCase(terms int) float64 {
	sum := 0.0
	sign := 1.0
	for k := 0; k < terms; k++ {
		sum += sign / float64(2*k+1)
		sign = -sign
	}
	return sum * 4
}
