// ops_generator generates gen_arithmetic_ops.go: one Function method per arithmetic group operation of
// the schema registry.
//
// It is run with `go generate` from the root of the module.
package main

import (
	"bytes"
	"flag"
	"os"
	"text/template"

	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/schema"
	"github.com/janpfeifer/must"
	"golang.org/x/tools/imports"
	"k8s.io/klog/v2"
)

var flagOutput = flag.String("output", "gen_arithmetic_ops.go", "Output file name.")

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	GenerateArithmeticOps(*flagOutput)
}

// arithmeticOp holds the template parameters of one operation.
type arithmeticOp struct {
	Name, Verb, Class, Identity string
	IgnoresNaN                  bool
}

var combineVerbs = map[schema.CombineKind]string{
	schema.CombineAdd: "sums",
	schema.CombineMul: "multiplies",
	schema.CombineMax: "takes the maximum of",
	schema.CombineMin: "takes the minimum of",
}

var arithmeticOpsTemplate = template.Must(template.New("arithmetic_ops").Parse(`
// Code generated by internal/cmd/ops_generator. DO NOT EDIT.

package groupops

import (
	"github.com/gomlx/groupops/internal/optypes"
	"github.com/gomlx/groupops/types"
)
{{range .}}
// {{.Name}} {{.Verb}} value over the invocations of the group selected by groupOp: the whole group (Reduce),
// the invocations up to and including each one (InclusiveScan), the ones before it (ExclusiveScan), or the
// invocations of its cluster (ClusteredReduce).
//
// value must be a scalar or vector of {{.Class}} values, and the result has the same type. The identity is {{.Identity}}.
{{- if .IgnoresNaN}}
// NaN values are ignored if any number takes part in the operation.
{{- end}}
//
// clusterSize is only used by ClusteredReduce, and it must be an integer constant power of two. Pass nil otherwise.
func (fn *Function) {{.Name}}(scope types.ExecutionScope, groupOp types.GroupOperation, value, clusterSize *Value) (*Value, error) {
	return fn.groupArithmeticOp(optypes.{{.Name}}, scope, groupOp, value, clusterSize)
}
{{end}}
`))

// GenerateArithmeticOps writes the arithmetic group operations to fileName.
func GenerateArithmeticOps(fileName string) {
	var ops []arithmeticOp
	for _, op := range schema.ArithmeticOps() {
		spec := schema.MustLookup(op).Arithmetic
		ops = append(ops, arithmeticOp{
			Name:       op.String(),
			Verb:       combineVerbs[spec.Combine],
			Class:      spec.Class.String(),
			Identity:   spec.Identity.String(),
			IgnoresNaN: op == optypes.GroupNonUniformFMax || op == optypes.GroupNonUniformFMin,
		})
	}

	var buf bytes.Buffer
	must.M(arithmeticOpsTemplate.Execute(&buf, ops))
	// imports.Process drops unused imports and formats the code.
	formatted := must.M1(imports.Process(fileName, buf.Bytes(), nil))
	must.M(os.WriteFile(fileName, formatted, 0644))
	klog.V(1).Infof("generated %d arithmetic operations in %s", len(ops), fileName)
}
