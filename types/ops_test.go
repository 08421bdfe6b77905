package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionScope(t *testing.T) {
	assert.True(t, ScopeWorkgroup.IsGroupScope())
	assert.True(t, ScopeSubgroup.IsGroupScope())
	for _, scope := range []ExecutionScope{ScopeCrossDevice, ScopeDevice, ScopeInvocation, ScopeQueueFamily, ScopeShaderCallKHR} {
		assert.False(t, scope.IsGroupScope(), "scope %s", scope)
	}
	assert.False(t, ExecutionScope(42).IsGroupScope())
	assert.Equal(t, "#spirv.scope<Subgroup>", ScopeSubgroup.ToSPIRV())

	var scope ExecutionScope
	require.NoError(t, scope.UnmarshalText([]byte("workgroup")))
	assert.Equal(t, ScopeWorkgroup, scope)
	require.Error(t, scope.UnmarshalText([]byte("Galaxy")))
}

func TestGroupOperation(t *testing.T) {
	assert.Equal(t, "#spirv.group_op<ClusteredReduce>", GroupOperationClusteredReduce.ToSPIRV())
	assert.Equal(t, "Reduce", GroupOperationReduce.String())
	assert.True(t, GroupOperationInclusiveScan.IsScan())
	assert.True(t, GroupOperationExclusiveScan.IsScan())
	assert.False(t, GroupOperationReduce.IsScan())
	assert.False(t, GroupOperationClusteredReduce.IsScan())
	assert.False(t, GroupOperation(7).IsAGroupOperation())

	g, err := GroupOperationString("InclusiveScan")
	require.NoError(t, err)
	assert.Equal(t, GroupOperationInclusiveScan, g)
}
