package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConflict(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		decision ConflictDecision
		wantErr  bool
		code     errbuilder.ErrCode
	}{
		{name: "default fails", action: "", wantErr: true, code: errbuilder.CodeAlreadyExists},
		{name: "fail", action: "FAIL", wantErr: true, code: errbuilder.CodeAlreadyExists},
		{name: "keep", action: "keep", decision: DecisionKeepExisting},
		{name: "replace", action: " replace ", decision: DecisionTakeIncoming},
		{name: "unknown", action: "merge", wantErr: true, code: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := ResolveConflict("/Pkg/Elem", tt.action)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.code, errbuilder.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.decision, decision)
		})
	}
}

func TestResolveConflictNamesPath(t *testing.T) {
	_, err := ResolveConflict("/DataTypes/uint8", ActionFail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/DataTypes/uint8 is defined more than once")
}
