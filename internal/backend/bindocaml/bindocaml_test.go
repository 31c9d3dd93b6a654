package bindocaml

import (
	"strings"
	"testing"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

func renderDecl() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	EmitDecl(w, model.Calls(), model.Schemas())
	return sb.String()
}

func renderImpl() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	EmitImpl(w, model.Calls(), model.Schemas())
	return sb.String()
}

func renderCGlue() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	EmitCGlue(w, model.Calls())
	return sb.String()
}

func TestEmitDecl_TouchSignature(t *testing.T) {
	out := renderDecl()
	if !strings.Contains(out, "val touch : t -> string -> unit") {
		t.Error("touch should declare as t -> string -> unit")
	}
}

func TestEmitDecl_OptionalStringIsOption(t *testing.T) {
	out := renderDecl()
	if !strings.Contains(out, "string option") {
		t.Error("an optional_string argument should be typed as string option")
	}
}

func TestEmitDecl_IntBoolReturnsTuple(t *testing.T) {
	out := renderDecl()
	if !strings.Contains(out, "val is_zero : t -> string -> int * bool") {
		t.Error("is_zero should return an int * bool tuple")
	}
}

func TestEmitImpl_BindsIntoCGlue(t *testing.T) {
	out := renderImpl()
	if !strings.Contains(out, `external touch : t -> string -> unit = "ocaml_guestfs_touch"`) {
		t.Error("touch must bind to the ocaml_guestfs_touch C primitive")
	}
}

func TestEmitCGlue_ReleasesRuntimeAroundBlockingCall(t *testing.T) {
	out := renderCGlue()
	if !strings.Contains(out, "caml_release_runtime_system ();") || !strings.Contains(out, "caml_acquire_runtime_system ();") {
		t.Error("glue stub must release and reacquire the runtime around the blocking call")
	}
}

func TestEmitCGlue_RaisesOnErrorMarker(t *testing.T) {
	out := renderCGlue()
	if !strings.Contains(out, `caml_raise_with_string (*caml_named_value ("guestfs_error")`) {
		t.Error("glue stub must raise the registered exception on the error marker")
	}
}

func TestEmitCGlue_RegistersAllArgumentsWithGC(t *testing.T) {
	out := renderCGlue()

	idx := strings.Index(out, "ocaml_guestfs_touch")
	if idx == -1 {
		t.Fatal("missing touch glue stub")
	}
	if !strings.Contains(out[idx:], "CAMLparam2 (gv, pathv);") {
		t.Error("touch takes one argument, so its stub must register gv and pathv with CAMLparam2")
	}

	idx = strings.Index(out, "ocaml_guestfs_command")
	if idx == -1 {
		t.Fatal("missing command glue stub")
	}
	if !strings.Contains(out[idx:], "CAMLparam4 (gv, pathv, backgroundv, stdinv);") {
		t.Error("command takes three arguments, so its stub must register all four values with CAMLparam4")
	}
}

func TestEmitCGlue_FreesAfterCopyingListReturn(t *testing.T) {
	out := renderCGlue()
	idx := strings.Index(out, "ocaml_guestfs_lvm_get_pvs")
	if idx == -1 {
		t.Fatal("missing lvm_get_pvs glue stub")
	}
	section := out[idx:]
	copyIdx := strings.Index(section, "guestfs_int_ocaml_copy_pv_list")
	freeIdx := strings.Index(section, "guestfs_free_lvm_pv_list (r);")
	if copyIdx == -1 || freeIdx == -1 || freeIdx < copyIdx {
		t.Error("list return must be copied into OCaml before the C list is freed")
	}
}
