// Package clientimpl emits the client action implementation: for every
// daemon call, a reply-vessel struct, a reply callback, the public client
// stub, and (for int_and_bool and LVM list returns) the guestfs_free_*
// routine the stub's ownership contract promises the caller. String and
// string-list returns get no such routine; the caller releases them with
// free.
package clientimpl

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// Emit writes the full client action implementation for calls to w.
func Emit(w *genutil.Writer, calls []model.Call) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line(`#include <stdio.h>`)
	w.Line(`#include <stdlib.h>`)
	w.Line(`#include <string.h>`)
	w.Line(`#include "guestfs.h"`)
	w.Line(`#include "guestfs-internal.h"`)
	w.Line(`#include "guestfs_protocol.h"`)
	w.Writeln()

	for _, c := range calls {
		if !c.IsDaemon() {
			continue
		}
		emitReplyVessel(w, c)
		w.Writeln()
		emitCallback(w, c)
		w.Writeln()
		emitStub(w, c)
		w.Writeln()
	}
}

func emitReplyVessel(w *genutil.Writer, c model.Call) {
	w.Linef("struct %s_rv {", c.Name)
	w.Line("  struct guestfs_message_header hdr;")
	w.Line("  struct guestfs_message_error err;")
	if c.Sig.Ret != model.RetErr {
		w.Linef("  struct %s_ret ret;", c.Name)
	}
	w.Line("  int cb_sequence;");
	w.Line("};")
}

func emitCallback(w *genutil.Writer, c model.Call) {
	w.Linef("static void %s_cb (guestfs_h *handle, void *data, XDR *xdr)", c.Name)
	w.Line("{")
	w.Linef("  struct %s_rv *rv = (struct %s_rv *) data;", c.Name, c.Name)
	w.Writeln()
	w.Line("  if (!xdr_guestfs_message_header (xdr, &rv->hdr)) {")
	w.Linef(`    error (handle, "%s: failed to parse reply header");`, c.Name)
	w.Line("    return;")
	w.Line("  }")
	w.Line("  if (rv->hdr.status == GUESTFS_STATUS_ERROR) {")
	w.Line("    if (!xdr_guestfs_message_error (xdr, &rv->err)) {")
	w.Linef(`      error (handle, "%s: failed to parse error message");`, c.Name)
	w.Line("      return;")
	w.Line("    }")
	if c.Sig.Ret != model.RetErr {
		w.Line("  } else {")
		w.Linef("    if (!xdr_%s_ret (xdr, &rv->ret)) {", c.Name)
		w.Linef(`      error (handle, "%s: failed to parse reply");`, c.Name)
		w.Line("      return;")
		w.Line("    }")
	}
	w.Line("  }")
	w.Writeln()
	w.Line("  rv->cb_sequence = 1;")
	w.Line("}")
}

func emitStub(w *genutil.Writer, c model.Call) {
	errMarker := genutil.ErrorMarker(c.Sig.Ret)

	w.Write(genutil.FormatPrototype(c.Name, c.Sig, genutil.ClientDefinition))
	w.Line("")
	w.Line("{")
	w.Linef("  struct %s_rv rv;", c.Name)
	if len(c.Sig.Args) > 0 {
		w.Linef("  struct %s_args args;", c.Name)
	}
	w.Line("  int serial;")
	w.Writeln()

	w.Line("  if (handle->state != READY) {")
	w.Linef(`    error (handle, "%s: handle is not ready, call guestfs_launch first");`, c.Name)
	w.Linef("    return %s;", errMarker)
	w.Line("  }")
	w.Writeln()

	if len(c.Sig.Args) > 0 {
		w.Line("  memset (&args, 0, sizeof args);")
	}
	w.Line("  memset (&rv, 0, sizeof rv);")
	for _, a := range c.Sig.Args {
		switch a.Kind {
		case model.ArgOptString:
			w.Linef("  args.%s = (char **) &%s; /* null means absent */", a.Name, a.Name)
		default:
			w.Linef("  args.%s = (%s) %s;", a.Name, genutil.ArgCType(a.Kind), a.Name)
		}
	}
	w.Writeln()

	if len(c.Sig.Args) > 0 {
		w.Linef("  serial = guestfs___send (handle, GUESTFS_PROC_%s,", upper(c.Name))
		w.Linef("                           (xdrproc_t) xdr_%s_args, (char *) &args);", c.Name)
	} else {
		w.Linef("  serial = guestfs___send (handle, GUESTFS_PROC_%s, NULL, NULL);", upper(c.Name))
	}
	w.Line("  if (serial == -1) {")
	w.Linef("    return %s;", errMarker)
	w.Line("  }")
	w.Writeln()

	w.Linef("  rv.cb_sequence = 0;")
	w.Linef("  guestfs___set_reply_callback (handle, %s_cb, &rv);", c.Name)
	w.Line("  while (rv.cb_sequence == 0) {")
	w.Line("    if (guestfs___run_single_event (handle) == -1) {")
	w.Linef(`      error (handle, "%s: failed, see earlier error messages");`, c.Name)
	w.Linef("      return %s;", errMarker)
	w.Line("    }")
	w.Line("  }")
	w.Writeln()

	w.Line("  if (guestfs___check_reply_header (handle, &rv.hdr, GUESTFS_PROC_" + upper(c.Name) + ", serial) == -1) {")
	w.Linef("    return %s;", errMarker)
	w.Line("  }")
	w.Writeln()

	w.Line("  if (rv.hdr.status == GUESTFS_STATUS_ERROR) {")
	w.Linef(`    error (handle, "%%s", rv.err.error_message);`)
	w.Line("    free (rv.err.error_message);")
	w.Linef("    return %s;", errMarker)
	w.Line("  }")
	w.Writeln()

	emitSuccessReturn(w, c)
	w.Line("}")
	w.Writeln()

	emitFreeRoutine(w, c)
}

func emitSuccessReturn(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetErr:
		w.Line("  return 0;")
	case model.RetInt, model.RetBool:
		w.Linef("  return rv.ret.%s;", c.RetField)
	case model.RetConstString:
		// Forbidden on daemon calls by validation; emitStub is only
		// reached for daemon calls, so this branch is unreachable in a
		// validated model and exists only to keep the switch exhaustive.
		w.Linef("  return rv.ret.%s;", c.RetField)
	case model.RetString:
		w.Line("  /* caller frees the returned string */")
		w.Linef("  return rv.ret.%s;", c.RetField)
	case model.RetStringList:
		w.Line("  /* reallocate so a trailing NULL terminator can be appended */")
		w.Line("  char **r;")
		w.Linef("  r = malloc ((rv.ret.%s.%s_len + 1) * sizeof (char *));", c.RetField, c.RetField)
		w.Linef("  memcpy (r, rv.ret.%s.%s_val, rv.ret.%s.%s_len * sizeof (char *));", c.RetField, c.RetField, c.RetField, c.RetField)
		w.Linef("  r[rv.ret.%s.%s_len] = NULL;", c.RetField, c.RetField)
		w.Line("  return r;")
	case model.RetIntBool:
		w.Line("  /* duplicated into a fresh public-shaped struct the caller frees */")
		w.Line("  struct guestfs_int_bool *r = malloc (sizeof *r);")
		w.Linef("  r->i = rv.ret.%s_i;", c.RetField)
		w.Linef("  r->b = rv.ret.%s_b;", c.RetField)
		w.Line("  return r;")
	case model.RetPVList, model.RetVGList, model.RetLVList:
		kind, _ := listKind(c.Sig.Ret)
		w.Linef("  /* copy the wire list's records into a fresh public struct the caller must free via guestfs_free_lvm_%s_list */", kind)
		w.Linef("  struct guestfs_lvm_%s_list *r = malloc (sizeof *r);", kind)
		w.Linef("  r->len = rv.ret.%s.%s_len;", c.RetField, c.RetField)
		w.Linef("  r->val = malloc (r->len * sizeof (struct guestfs_lvm_%s));", kind)
		w.Linef("  memcpy (r->val, rv.ret.%s.%s_val, r->len * sizeof (struct guestfs_lvm_%s));", c.RetField, c.RetField, kind)
		w.Line("  return r;")
	}
}

func emitFreeRoutine(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetIntBool:
		w.Line("void")
		w.Line("guestfs_free_int_bool (struct guestfs_int_bool *v)")
		w.Line("{")
		w.Line("  free (v);")
		w.Line("}")
		w.Writeln()
	case model.RetPVList, model.RetVGList, model.RetLVList:
		kind, _ := listKind(c.Sig.Ret)
		w.Linef("void")
		w.Linef("guestfs_free_lvm_%s_list (struct guestfs_lvm_%s_list *l)", kind, kind)
		w.Line("{")
		w.Line("  free (l->val);")
		w.Line("  free (l);")
		w.Line("}")
		w.Writeln()
	}
}

func listKind(ret model.RetKind) (string, bool) {
	switch ret {
	case model.RetPVList:
		return "pv", true
	case model.RetVGList:
		return "vg", true
	case model.RetLVList:
		return "lv", true
	default:
		return "", false
	}
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
