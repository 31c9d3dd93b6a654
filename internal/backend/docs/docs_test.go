package docs

import (
	"strings"
	"testing"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

func renderActions() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	EmitActions(w, model.Calls())
	return sb.String()
}

func renderCommands() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	EmitCommands(w, model.Calls())
	return sb.String()
}

func renderStructs() string {
	var sb strings.Builder
	w := genutil.NewWriter(&sb)
	EmitStructs(w, model.Schemas())
	return sb.String()
}

func TestEmitActions_AlphabeticalOrder(t *testing.T) {
	out := renderActions()
	blockIdx := strings.Index(out, "=head2 guestfs_blockdev_getsize64")
	catIdx := strings.Index(out, "=head2 guestfs_cat")
	if blockIdx == -1 || catIdx == -1 {
		t.Fatal("missing expected action sections")
	}
	if blockIdx > catIdx {
		t.Error("action sections must be in alphabetical order")
	}
}

func TestEmitActions_ProtocolLimitNoticeForCat(t *testing.T) {
	out := renderActions()
	catSection := out[strings.Index(out, "=head2 guestfs_cat"):]
	if !strings.Contains(catSection[:800], "PROTOCOL LIMITS") {
		t.Error("cat's section must carry the protocol-limit notice")
	}
}

func TestEmitActions_ReturnClauseMatchesRetKind(t *testing.T) {
	out := renderActions()
	if !strings.Contains(out, "must call C<guestfs_free_lvm_pv_list>") {
		t.Error("lvm_get_pvs return clause must mention the matching free routine")
	}
}

func TestEmitCommands_ExcludesNotInShellAndShowsAlias(t *testing.T) {
	out := renderCommands()
	if strings.Contains(out, "=head2 exists") {
		t.Error("exists is not-in-shell and must not appear in the command reference")
	}
	if !strings.Contains(out, "alias for this command") {
		t.Error("set-path's alias note must appear somewhere in the command reference")
	}
}

func TestEmitStructs_UUIDAndOptPercentAnnotated(t *testing.T) {
	out := renderStructs()
	if !strings.Contains(out, "pv_uuid[32]") {
		t.Error("pv_uuid must be declared as a 32-byte array")
	}
	if !strings.Contains(out, "not NUL-terminated") {
		t.Error("uuid columns must be annotated as not NUL-terminated")
	}
	if !strings.Contains(out, `not present`) {
		t.Error("opt_percent columns must document the -1 sentinel")
	}
}
