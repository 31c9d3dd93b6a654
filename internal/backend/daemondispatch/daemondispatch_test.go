package daemondispatch

import (
	"strings"
	"testing"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

func render() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	Emit(w, model.Calls(), model.Schemas())
	return sb.String()
}

func TestEmit_DispatchSwitchHasTouchCase(t *testing.T) {
	out := render()
	if !strings.Contains(out, "case GUESTFS_PROC_TOUCH:") || !strings.Contains(out, "touch_stub (xdr_in);") {
		t.Error("dispatch switch is missing the touch case")
	}
	if !strings.Contains(out, "unknown procedure number") {
		t.Error("dispatch switch must reply with an error for unknown procedures")
	}
}

func TestEmit_DecodeFailureRepliesWithError(t *testing.T) {
	out := render()
	if !strings.Contains(out, `reply_with_error ("touch: failed to decode arguments");`) {
		t.Error("touch_stub must reply with an error on decode failure")
	}
}

func TestEmit_ErrorMarkerShortCircuitsReply(t *testing.T) {
	out := render()
	if !strings.Contains(out, "has already sent its own error reply") {
		t.Error("stub must not send a second reply when do_<name> already signalled an error")
	}
}

func TestEmit_SizeColumnEmptyStringIsParseFailure(t *testing.T) {
	out := render()
	if !strings.Contains(out, "failed to parse size for pv_size") {
		t.Error("bytes columns must surface a \"failed to parse size\" diagnostic")
	}
}

func TestEmit_UUIDTokenizerSkipsDashes(t *testing.T) {
	out := render()
	if !strings.Contains(out, "if (p[i] != '-')") {
		t.Error("uuid column tokenizer must skip dash characters")
	}
}

func TestEmit_OptPercentEmptyYieldsSentinel(t *testing.T) {
	out := render()
	if !strings.Contains(out, "snap_percent = -1;") {
		t.Error("opt_percent column must yield -1 for an empty token")
	}
}

func TestEmit_ListerInvokesLVMWithUnitsB(t *testing.T) {
	out := render()
	if !strings.Contains(out, "--units b -o") {
		t.Error("lister must invoke /sbin/lvm with --units b so no size column is ever empty")
	}
}
