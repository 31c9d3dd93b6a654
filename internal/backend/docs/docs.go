// Package docs emits the three POD manual pages: the client API reference,
// the shell command reference, and the LVM record-type reference. All three
// are plain prose built with the same Writer helpers as every code backend;
// there is no separate templating path for documentation.
package docs

import (
	"sort"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// retClause is the prose describing what a call returns, keyed by RetKind.
func retClause(ret model.RetKind) string {
	switch ret {
	case model.RetErr:
		return "This function returns 0 on success or -1 on error."
	case model.RetInt:
		return "On error this function returns -1."
	case model.RetBool:
		return "This function returns a C<true>/C<false> flag. On error it returns -1."
	case model.RetConstString:
		return "The returned string is owned by the library and must not be freed."
	case model.RetString:
		return "This function returns a string, or NULL on error. The caller must free the returned string after use."
	case model.RetStringList:
		return "This function returns a NULL-terminated array of strings (like L<environ(3)>), or NULL on error. The caller must free the strings and the array after use."
	case model.RetIntBool:
		return "This function returns a C<struct guestfs_int_bool *>, or NULL on error. The caller must call C<guestfs_free_int_bool> after use."
	case model.RetPVList:
		return "This function returns a C<struct guestfs_lvm_pv_list *>, or NULL on error. The caller must call C<guestfs_free_lvm_pv_list> after use."
	case model.RetVGList:
		return "This function returns a C<struct guestfs_lvm_vg_list *>, or NULL on error. The caller must call C<guestfs_free_lvm_vg_list> after use."
	case model.RetLVList:
		return "This function returns a C<struct guestfs_lvm_lv_list *>, or NULL on error. The caller must call C<guestfs_free_lvm_lv_list> after use."
	default:
		return ""
	}
}

func sortedByName(calls []model.Call) []model.Call {
	out := append([]model.Call(nil), calls...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EmitActions writes the client API manual page (guestfs-actions.pod).
func EmitActions(w *genutil.Writer, calls []model.Call) {
	w.Line("=head1 NAME")
	w.Writeln()
	w.Line("guestfs-actions - guest filesystem API actions")
	w.Writeln()
	w.Line("=head1 DESCRIPTION")
	w.Writeln()
	w.Line("This manual page documents the actions of the client API, one")
	w.Line("section per call, in alphabetical order.")
	w.Writeln()

	for _, c := range sortedByName(calls) {
		w.Linef("=head2 guestfs_%s", c.Name)
		w.Writeln()
		w.Linef(" %s", genutil.FormatPrototype(c.Name, c.Sig, genutil.ClientExtern))
		for _, p := range genutil.WrapParagraphs(genutil.RewriteShellRefs(c.LongDesc)) {
			w.Line(p)
			w.Writeln()
		}
		w.Line(retClause(c.Sig.Ret))
		if c.Flags.ProtocolLimitWarning {
			w.Writeln()
			w.Line("Because of the message protocol, there is a transfer limit")
			w.Line("of somewhere between 2MB and 4MB. See L<guestfs(3)/PROTOCOL LIMITS>.")
		}
		w.Writeln()
	}
}

// EmitCommands writes the shell command manual page (guestfish-commands.pod).
func EmitCommands(w *genutil.Writer, calls []model.Call) {
	w.Line("=head1 NAME")
	w.Writeln()
	w.Line("guestfish-commands - guestfish command reference")
	w.Writeln()
	w.Line("=head1 COMMANDS")
	w.Writeln()

	var visible []model.Call
	for _, c := range calls {
		if !c.Flags.NotInShell {
			visible = append(visible, c)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return genutil.Hyphenate(visible[i].Name) < genutil.Hyphenate(visible[j].Name)
	})

	for _, c := range visible {
		name := genutil.Hyphenate(c.Name)
		w.Linef("=head2 %s", name)
		w.Writeln()
		w.Write(" " + name)
		for _, a := range c.Sig.Args {
			if a.Kind == model.ArgBool {
				w.Write(" <true|false>")
			} else {
				w.Write(" <" + a.Name + ">")
			}
		}
		w.Writeln()
		w.Writeln()
		for _, p := range genutil.WrapParagraphs(genutil.RewriteShellRefs(c.LongDesc)) {
			w.Line(p)
			w.Writeln()
		}
		if c.Flags.ShellAlias != "" {
			w.Linef("You can use C<%s> as an alias for this command.", c.Flags.ShellAlias)
			w.Writeln()
		}
	}
}

// EmitStructs writes the LVM record-type manual page (guestfs-structs.pod).
func EmitStructs(w *genutil.Writer, records []model.RecordSchema) {
	w.Line("=head1 NAME")
	w.Writeln()
	w.Line("guestfs-structs - LVM record types")
	w.Writeln()
	w.Line("=head1 STRUCTS")
	w.Writeln()

	for _, rec := range records {
		w.Linef("=head2 guestfs_lvm_%s", rec.Kind)
		w.Writeln()
		w.Line(" struct guestfs_lvm_" + rec.Kind + " {")
		for _, col := range rec.Columns {
			if col.Kind == model.ColUUID {
				w.Linef("   %s%s[32];%s", podColType(col.Kind), col.Name, structNote(col))
				continue
			}
			w.Linef("   %s%s;%s", podColType(col.Kind), col.Name, structNote(col))
		}
		w.Line(" };")
		w.Writeln()
		w.Line(" struct guestfs_lvm_" + rec.Kind + "_list {")
		w.Linef("   uint32_t len;")
		w.Linef("   struct guestfs_lvm_%s *val;", rec.Kind)
		w.Line(" };")
		w.Writeln()
	}
}

func podColType(k model.ColKind) string {
	switch k {
	case model.ColString:
		return "char * "
	case model.ColUUID:
		return "char "
	case model.ColBytes:
		return "uint64_t "
	case model.ColInt:
		return "int64_t "
	case model.ColOptPercent:
		return "float "
	default:
		return "int "
	}
}

func structNote(col model.Column) string {
	switch col.Kind {
	case model.ColUUID:
		return "  /* 32 bytes, not NUL-terminated */"
	case model.ColOptPercent:
		return "  /* -1 means \"not present\" */"
	default:
		return ""
	}
}
