package method_test

import (
	"testing"

	"github.com/katalvlaran/fredholm/linsolve"
	"github.com/katalvlaran/fredholm/method"
	"github.com/katalvlaran/fredholm/quadrature"
	"github.com/katalvlaran/fredholm/scenario"
)

func benchmarkMethod(b *testing.B, m method.Method) {
	s := scenario.Exponent(1, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Solve(s.Birth, s.Death, s.Parameter, 15); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkNystrom_400 times assembly plus a 400×400 LU solve.
func BenchmarkNystrom_400(b *testing.B) {
	m, err := method.NewNystrom(linsolve.LU{}, 400)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkMethod(b, m)
}

func BenchmarkNeumann_10x200(b *testing.B) {
	rule, _ := quadrature.NewTrapezoid(400)
	m, err := method.NewNeumann(10, 200, rule)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkMethod(b, m)
}

// BenchmarkCosineGalerkin_20 builds a 10×10 system with 200-node integrals.
func BenchmarkCosineGalerkin_20(b *testing.B) {
	rule, _ := quadrature.NewTrapezoid(200)
	m, err := method.NewCosineGalerkin(rule, linsolve.LU{}, method.SemicircleWeight, 20)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkMethod(b, m)
}
