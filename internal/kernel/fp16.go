package kernel

import "github.com/x448/float16"

// RoundToHalf rounds every element through IEEE 754 half precision in
// place. Kernels tuned with float_width 16 store inputs at half
// precision and widen back to float32 for arithmetic.
func RoundToHalf(buf []float32) {
	for i, v := range buf {
		buf[i] = float16.Fromfloat32(v).Float32()
	}
}
