// Package clientheader emits the public client action header: one
// single-line "extern ..." declaration per call, in declaration order
// rather than an alphabetical or numeric sort, since a header is
// conventionally read top-to-bottom alongside the table that produced it.
package clientheader

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// Emit writes one prototype per call to w, for every call regardless of
// flags (including not-in-shell calls: that flag only excludes a call from
// the shell surfaces).
func Emit(w *genutil.Writer, calls []model.Call) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line("#ifndef GUESTFS_ACTIONS_H_")
	w.Line("#define GUESTFS_ACTIONS_H_")
	w.Writeln()

	for _, c := range calls {
		w.Write(genutil.FormatPrototype(c.Name, c.Sig, genutil.ClientExtern))
	}

	w.Writeln()
	w.Line("#endif /* GUESTFS_ACTIONS_H_ */")
}
