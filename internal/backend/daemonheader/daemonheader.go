// Package daemonheader emits one single-line "do_<name>" prototype per
// daemon call, for the daemon-side filesystem implementations to satisfy.
package daemonheader

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// Emit writes one prototype per daemon call to w. Client-only calls never
// reach the daemon and are skipped.
func Emit(w *genutil.Writer, calls []model.Call) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line("#ifndef DAEMON_ACTIONS_H_")
	w.Line("#define DAEMON_ACTIONS_H_")
	w.Writeln()

	for _, c := range calls {
		if !c.IsDaemon() {
			continue
		}
		w.Write(genutil.FormatPrototype(c.Name, c.Sig, genutil.DaemonStub))
	}

	w.Writeln()
	w.Line("#endif /* DAEMON_ACTIONS_H_ */")
}
