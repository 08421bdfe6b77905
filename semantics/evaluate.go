package semantics

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/gomlx/groupops/types"
	"github.com/gomlx/groupops/types/shapes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Result of evaluating an arithmetic group operation.
type Result struct {
	// Values is a flat slice of the same type and length as the evaluated values: the result of
	// invocation i is Values[i*width : (i+1)*width].
	Values any

	// Unspecified[i] reports whether the result of invocation i is unspecified. That is the case for:
	//
	//   - inactive invocations;
	//   - every invocation of a ClusteredReduce whose cluster size exceeds the group size;
	//   - FMax and FMin when, for any component, every value folded into the result is NaN.
	//
	// The corresponding Values hold an arbitrary value.
	Unspecified []bool
}

// Evaluate computes the arithmetic group operation op with groupOp over the invocations of group.
//
// flat holds the value operand of every invocation, width components each (width is 1 for scalars), in
// order of invocation id. Values of inactive invocations are ignored. clusterSize is only used by
// ClusteredReduce.
//
// Clusters are contiguous ranges of clusterSize invocation ids. Scans fold the active invocations in
// order of id: the result of an invocation in an ExclusiveScan with no active invocation before it is the
// identity.
//
// Evaluate only handles instances that would verify: invalid operations, element types, group operations,
// vector widths or cluster sizes are errors. A cluster size larger than the group is not.
func Evaluate(op optypes.OpType, groupOp types.GroupOperation, clusterSize int, group Group, width int,
	flat any) (*Result, error) {
	dtype := dtypeOfFlat(flat)
	if dtype == dtypes.InvalidDType {
		return nil, errors.Errorf("Evaluate(%s): unsupported values type %T", op, flat)
	}
	spec, err := arithmeticSpec(op, dtype)
	if err != nil {
		return nil, errors.WithMessagef(err, "Evaluate(%s)", op)
	}
	if !groupOp.IsAGroupOperation() {
		return nil, errors.Errorf("Evaluate(%s): invalid group operation %s", op, groupOp)
	}
	if width != 1 && !slices.Contains(shapes.VectorWidths, width) {
		return nil, errors.Errorf("Evaluate(%s): invalid vector width %d", op, width)
	}
	if group.Size() == 0 {
		return nil, errors.Errorf("Evaluate(%s): empty group", op)
	}
	if groupOp == types.GroupOperationClusteredReduce && (clusterSize < 1 || clusterSize&(clusterSize-1) != 0) {
		return nil, errors.Errorf("Evaluate(%s): cluster size must be a positive power of two, got %d", op, clusterSize)
	}
	e := evaluator{spec: spec, dtype: dtype, groupOp: groupOp, clusterSize: clusterSize, group: group, width: width}

	switch flat := flat.(type) {
	case []int8:
		return evaluateFlat(e, flat, nil)
	case []int16:
		return evaluateFlat(e, flat, nil)
	case []int32:
		return evaluateFlat(e, flat, nil)
	case []int64:
		return evaluateFlat(e, flat, nil)
	case []uint8:
		return evaluateFlat(e, flat, nil)
	case []uint16:
		return evaluateFlat(e, flat, nil)
	case []uint32:
		return evaluateFlat(e, flat, nil)
	case []uint64:
		return evaluateFlat(e, flat, nil)
	case []float16.Float16:
		r, err := evaluateFlat(e, float16sToFloat32s(flat), roundFloat16)
		if err != nil {
			return nil, err
		}
		r.Values = float32sToFloat16s(r.Values.([]float32))
		return r, nil
	case []float32:
		return evaluateFlat(e, flat, nil)
	case []float64:
		return evaluateFlat(e, flat, nil)
	}
	return nil, errors.Errorf("Evaluate(%s): unsupported values type %T", op, flat)
}

// evaluator holds the validated parameters of an evaluation.
type evaluator struct {
	spec        *schema.ArithmeticSpec
	dtype       dtypes.DType
	groupOp     types.GroupOperation
	clusterSize int
	group       Group
	width       int
}

// fold accumulates values with an arithmetic operation.
type fold[T numeric] struct {
	acc           T
	combine       schema.CombineKind
	round         func(T) T
	count         int
	nonNaN        int
	suppressesNaN bool
}

func newFold[T numeric](e evaluator, round func(T) T) *fold[T] {
	return &fold[T]{
		acc:           identityOf[T](e.spec.Identity, e.dtype),
		combine:       e.spec.Combine,
		round:         round,
		suppressesNaN: e.spec.Combine == schema.CombineMax || e.spec.Combine == schema.CombineMin,
	}
}

func (f *fold[T]) add(v T) {
	f.acc = combine(f.combine, f.acc, v)
	if f.round != nil {
		f.acc = f.round(f.acc)
	}
	f.count++
	if !isNaN(v) {
		f.nonNaN++
	}
}

// unspecified returns whether the accumulated value is a don't-care: a max or min of only NaNs.
func (f *fold[T]) unspecified() bool {
	return f.suppressesNaN && f.count > 0 && f.nonNaN == 0
}

func evaluateFlat[T numeric](e evaluator, flat []T, round func(T) T) (*Result, error) {
	size := e.group.Size()
	if len(flat) != size*e.width {
		return nil, errors.Errorf("Evaluate: got %d values for %d invocations of width %d", len(flat), size, e.width)
	}
	values := make([]T, len(flat))
	unspecified := make([]bool, size)
	identity := identityOf[T](e.spec.Identity, e.dtype)
	for id := range size {
		if !e.group.IsActive(id) {
			unspecified[id] = true
			for c := range e.width {
				values[id*e.width+c] = identity
			}
		}
	}

	for c := range e.width {
		at := func(id int) int { return id*e.width + c }
		switch e.groupOp {
		case types.GroupOperationInclusiveScan, types.GroupOperationExclusiveScan:
			f := newFold(e, round)
			for id := range size {
				if !e.group.IsActive(id) {
					continue
				}
				if e.groupOp == types.GroupOperationExclusiveScan {
					values[at(id)] = f.acc
					unspecified[id] = unspecified[id] || f.unspecified()
					f.add(flat[at(id)])
				} else {
					f.add(flat[at(id)])
					values[at(id)] = f.acc
					unspecified[id] = unspecified[id] || f.unspecified()
				}
			}

		default:
			segment := size
			if e.groupOp == types.GroupOperationClusteredReduce {
				segment = e.clusterSize
			}
			for start := 0; start < size; start += segment {
				end := min(start+segment, size)
				f := newFold(e, round)
				for id := start; id < end; id++ {
					if e.group.IsActive(id) {
						f.add(flat[at(id)])
					}
				}
				for id := start; id < end; id++ {
					if e.group.IsActive(id) {
						values[at(id)] = f.acc
						unspecified[id] = unspecified[id] || f.unspecified()
					}
				}
			}
		}
	}

	if e.groupOp == types.GroupOperationClusteredReduce && e.clusterSize > size {
		for id := range unspecified {
			unspecified[id] = true
		}
	}
	return &Result{Values: values, Unspecified: unspecified}, nil
}
