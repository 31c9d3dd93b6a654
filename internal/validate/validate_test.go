package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmguest/apigen/internal/model"
)

func call(name string, proc int) model.Call {
	return model.Call{
		Name:     name,
		Sig:      model.Signature{Ret: model.RetErr},
		Proc:     proc,
		LongDesc: "does a thing",
	}
}

func TestValidate_AcceptsRealTable(t *testing.T) {
	require.NoError(t, Validate(model.Calls()))
}

func TestValidate_HyphenInName(t *testing.T) {
	calls := []model.Call{call("set-path", model.NoProcedure)}
	err := Validate(calls)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hyphen")
}

func TestValidate_DuplicateProcedureNumbers(t *testing.T) {
	calls := []model.Call{call("a", 7), call("b", 7)}
	err := Validate(calls)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"a"`)
	require.Contains(t, err.Error(), `"b"`)
	require.Contains(t, err.Error(), "7")
}

func TestValidate_ConstStringOnDaemonCall(t *testing.T) {
	calls := []model.Call{
		{
			Name:     "foo",
			Sig:      model.Signature{Ret: model.RetConstString},
			Proc:     9,
			LongDesc: "bad",
		},
	}
	err := Validate(calls)
	require.Error(t, err)
	require.Contains(t, err.Error(), "const_string")
}

func TestValidate_LongDescriptionTrailingNewline(t *testing.T) {
	calls := []model.Call{
		{
			Name:     "foo",
			Sig:      model.Signature{Ret: model.RetErr},
			Proc:     model.NoProcedure,
			LongDesc: "bad\n",
		},
	}
	err := Validate(calls)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line terminator")
}

func TestValidate_ZeroProcedureIsRejected(t *testing.T) {
	// Proc 0 is neither a valid daemon procedure number nor the
	// NoProcedure sentinel (-1), so it must be rejected either way.
	calls := []model.Call{call("bar", 0)}
	err := Validate(calls)
	require.Error(t, err)
}

func TestValidate_NonPositiveDaemonProcedure(t *testing.T) {
	calls := []model.Call{call("bar", -5)}
	// -5 is not model.NoProcedure (-1), so this call looks like a daemon
	// call (IsDaemon is true for any proc != NoProcedure) with a
	// non-positive number.
	err := Validate(calls)
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-positive")
}

func TestValidate_OrderIndependentUniqueness(t *testing.T) {
	tests := []struct {
		name  string
		calls []model.Call
	}{
		{"ascending", []model.Call{call("a", 1), call("b", 2), call("c", 3)}},
		{"descending", []model.Call{call("a", 3), call("b", 2), call("c", 1)}},
		{"mixed", []model.Call{call("a", 2), call("b", 1), call("c", 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Validate(tt.calls))
		})
	}
}
