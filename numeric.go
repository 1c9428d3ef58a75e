package hierarchy

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by the reduction engine.
type Number interface {
	constraints.Integer | constraints.Float
}

type numericClass uint8

const (
	classSigned numericClass = iota
	classUnsigned
	classFloat
)

func kindOf[T Number]() reflect.Kind {
	var z T
	return reflect.TypeOf(z).Kind()
}

func classOf[T Number]() numericClass {
	switch kindOf[T]() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUnsigned
	case reflect.Float32, reflect.Float64:
		return classFloat
	default:
		return classSigned
	}
}

func isInteger[T Number]() bool { return classOf[T]() != classFloat }

func isFloat[T Number]() bool { return classOf[T]() == classFloat }

// sameType reports whether R and T are the same type, named types included.
func sameType[R, T Number]() bool {
	var r R
	_, ok := any(r).(T)
	return ok
}

// limits returns the lowest and highest finite values representable by T.
// Floats use +/-MaxFloat, not infinities.
func limits[T Number]() (lowest, highest T) {
	lo := reflect.ValueOf(&lowest).Elem()
	hi := reflect.ValueOf(&highest).Elem()
	switch lo.Kind() {
	case reflect.Int8:
		lo.SetInt(math.MinInt8)
		hi.SetInt(math.MaxInt8)
	case reflect.Int16:
		lo.SetInt(math.MinInt16)
		hi.SetInt(math.MaxInt16)
	case reflect.Int32:
		lo.SetInt(math.MinInt32)
		hi.SetInt(math.MaxInt32)
	case reflect.Int, reflect.Int64:
		bits := lo.Type().Bits()
		lo.SetInt(math.MinInt64 >> (64 - bits))
		hi.SetInt(math.MaxInt64 >> (64 - bits))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		hi.SetUint(math.MaxUint64 >> (64 - lo.Type().Bits()))
	case reflect.Float32:
		lo.SetFloat(-math.MaxFloat32)
		hi.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		lo.SetFloat(-math.MaxFloat64)
		hi.SetFloat(math.MaxFloat64)
	}
	return lowest, highest
}
