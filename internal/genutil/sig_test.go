package genutil

import (
	"testing"

	"github.com/vmguest/apigen/internal/model"
)

func TestFormatArgs_EmptyIsVoid(t *testing.T) {
	got := FormatArgs(nil, false)
	if got != "void" {
		t.Errorf("FormatArgs(nil, false) = %q, want %q", got, "void")
	}
}

func TestFormatArgs_PrependsHandle(t *testing.T) {
	args := []model.Arg{{Name: "path", Kind: model.ArgString}}
	got := FormatArgs(args, true)
	want := "guestfs_h *handle, const char *path"
	if got != want {
		t.Errorf("FormatArgs = %q, want %q", got, want)
	}
}

func TestFormatPrototype_ClientExtern(t *testing.T) {
	sig := model.Signature{Ret: model.RetErr, Args: []model.Arg{{Name: "path", Kind: model.ArgString}}}
	got := FormatPrototype("touch", sig, ClientExtern)
	want := "extern int guestfs_touch (guestfs_h *handle, const char *path);\n"
	if got != want {
		t.Errorf("FormatPrototype = %q, want %q", got, want)
	}
}

func TestFormatPrototype_DaemonStubHasNoHandle(t *testing.T) {
	sig := model.Signature{Ret: model.RetErr, Args: []model.Arg{{Name: "path", Kind: model.ArgString}}}
	got := FormatPrototype("touch", sig, DaemonStub)
	want := "extern int do_touch (const char *path);\n"
	if got != want {
		t.Errorf("FormatPrototype = %q, want %q", got, want)
	}
}

func TestReturnCType_CompositeKindsDifferBetweenPublicAndWire(t *testing.T) {
	tests := []struct {
		ret        model.RetKind
		wantPublic string
		wantWire   string
	}{
		{model.RetIntBool, "struct guestfs_int_bool *", "guestfs_int_int_bool *"},
		{model.RetPVList, "struct guestfs_lvm_pv_list *", "guestfs_int_lvm_pv_list *"},
		{model.RetVGList, "struct guestfs_lvm_vg_list *", "guestfs_int_lvm_vg_list *"},
		{model.RetLVList, "struct guestfs_lvm_lv_list *", "guestfs_int_lvm_lv_list *"},
	}
	for _, tt := range tests {
		if got := ReturnCType(tt.ret, false); got != tt.wantPublic {
			t.Errorf("ReturnCType(%v, false) = %q, want %q", tt.ret, got, tt.wantPublic)
		}
		if got := ReturnCType(tt.ret, true); got != tt.wantWire {
			t.Errorf("ReturnCType(%v, true) = %q, want %q", tt.ret, got, tt.wantWire)
		}
	}
}

func TestErrorMarker(t *testing.T) {
	tests := []struct {
		ret  model.RetKind
		want string
	}{
		{model.RetErr, "-1"},
		{model.RetInt, "-1"},
		{model.RetBool, "-1"},
		{model.RetConstString, "NULL"},
		{model.RetString, "NULL"},
		{model.RetStringList, "NULL"},
		{model.RetPVList, "NULL"},
	}
	for _, tt := range tests {
		if got := ErrorMarker(tt.ret); got != tt.want {
			t.Errorf("ErrorMarker(%v) = %q, want %q", tt.ret, got, tt.want)
		}
	}
}
