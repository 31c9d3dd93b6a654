package cstructs

import (
	"strings"
	"testing"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

func TestEmit_BitExactFieldLayout(t *testing.T) {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	Emit(w, model.Schemas())
	out := sb.String()

	if !strings.Contains(out, "struct guestfs_lvm_pv {") {
		t.Fatal("missing guestfs_lvm_pv struct")
	}
	if !strings.Contains(out, "char pv_uuid[32];") {
		t.Error("pv_uuid should be a 32-byte opaque field")
	}
	if !strings.Contains(out, "uint64_t pv_size;") {
		t.Error("pv_size should be uint64_t")
	}
	if !strings.Contains(out, "struct guestfs_lvm_pv_list {") {
		t.Error("missing guestfs_lvm_pv_list container")
	}
	if !strings.Contains(out, "struct guestfs_int_bool {") {
		t.Error("missing guestfs_int_bool")
	}
}
