package wireschema

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

func TestEmit_ContainsTouchArgsAndProcEnum(t *testing.T) {
	out := render()
	if !strings.Contains(out, "struct touch_args {") {
		t.Error("missing touch_args struct")
	}
	if !strings.Contains(out, "  str path;") {
		t.Error("missing path field in touch_args")
	}
	if !strings.Contains(out, "GUESTFS_PROC_TOUCH = 3,") {
		t.Error("missing GUESTFS_PROC_TOUCH enum entry")
	}
}

func TestEmit_ClientOnlyCallsNotInProcEnum(t *testing.T) {
	out := render()
	if strings.Contains(out, "GUESTFS_PROC_SET_PATH") {
		t.Error("client-only call set_path must not appear in the procedure enum")
	}
}

func TestEmit_RecordsInFixedOrder(t *testing.T) {
	out := render()
	pvIdx := strings.Index(out, "struct guestfs_int_lvm_pv {")
	vgIdx := strings.Index(out, "struct guestfs_int_lvm_vg {")
	lvIdx := strings.Index(out, "struct guestfs_int_lvm_lv {")
	if pvIdx < 0 || vgIdx < 0 || lvIdx < 0 {
		t.Fatal("missing a record struct")
	}
	if !(pvIdx < vgIdx && vgIdx < lvIdx) {
		t.Error("records are not emitted in PV, VG, LV order")
	}
}

func TestEmit_ConstantsPresent(t *testing.T) {
	out := render()
	for _, want := range []string{
		"const GUESTFS_MESSAGE_MAX = 4194304;",
		"const GUESTFS_PROGRAM = 0x2000F5F5;",
		"const GUESTFS_PROTOCOL_VERSION = 1;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing constant: %s", want)
		}
	}
}

func TestEmit_IntAndBoolRetSplitsIntoTwoFields(t *testing.T) {
	out := render()
	if !strings.Contains(out, "struct is_zero_ret {") {
		t.Fatal("missing is_zero_ret struct")
	}
	if !strings.Contains(out, "  int result_i;") || !strings.Contains(out, "  bool result_b;") {
		t.Error("is_zero_ret should split into result_i/result_b fields")
	}
}
