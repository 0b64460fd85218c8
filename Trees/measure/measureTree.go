// Command measure times the sequential and the parallel node count of trees
// of growing sizes and prints how much the parallel one gains.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/Trees/arrTree"
)

const (
	bStepN    = 1 << 15
	bNumSteps = 20
)

var _R = rand.New(rand.NewSource(0))

func createTrees(n int) (*Trees.BSTree[int], *arrTree.ArrTree[int, uint32]) {
	all := make([]int, n)
	for i := range all {
		all[i] = _R.Int()
	}
	return Trees.From(all), arrTree.From[int, uint32](all)
}

var __r1 uint

func measure(f func() uint) float64 {
	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			__r1 = f()
		}
	})
	return float64(br.NsPerOp())
}

// stats of the ratios sequential/parallel.
func stats(cs []float64) (avg, stddev float64) {
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg = sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	return avg, math.Sqrt(sum / float64(len(cs)))
}

func main() {
	testing.Init()
	var ptrGain, arrGain []float64
	for i := 1; i <= bNumSteps; i++ {
		n := bStepN * i
		pt, at := createTrees(n)
		ptrGain = append(ptrGain, measure(pt.Len)/measure(pt.ParLen))
		arrGain = append(arrGain, measure(at.Len)/measure(at.ParLen))
		fmt.Printf("%d nodes: BSTree %.2fx, ArrTree %.2fx\n", n, ptrGain[i-1], arrGain[i-1])
	}
	avg, stddev := stats(ptrGain)
	fmt.Printf("BSTree average: %fx, stddev: %f\n", avg, stddev)
	avg, stddev = stats(arrGain)
	fmt.Printf("ArrTree average: %fx, stddev: %f\n", avg, stddev)
}
