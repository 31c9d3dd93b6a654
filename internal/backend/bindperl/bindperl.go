// Package bindperl emits the Perl host binding: the XS extension stub
// module, which validates and unpacks arguments and pushes typed results
// back onto the Perl stack, and the prose documentation module describing
// each call's Perl calling convention.
package bindperl

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// EmitXS writes the XS extension stub module (Guestfs.xs).
func EmitXS(w *genutil.Writer, calls []model.Call) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line(`#include "EXTERN.h"`)
	w.Line(`#include "perl.h"`)
	w.Line(`#include "XSUB.h"`)
	w.Line(`#include "guestfs.h"`)
	w.Writeln()

	w.Line("MODULE = Sys::Guestfs  PACKAGE = Sys::Guestfs")
	w.Writeln()

	for _, c := range calls {
		emitXSStub(w, c)
		w.Writeln()
	}
}

func xsArgType(k model.ArgKind) string {
	switch k {
	case model.ArgString, model.ArgOptString:
		return "char *"
	case model.ArgBool, model.ArgInt:
		return "int"
	default:
		return "SV *"
	}
}

func emitXSStub(w *genutil.Writer, c model.Call) {
	retDecl := genutil.ReturnCType(c.Sig.Ret, false)
	if c.Sig.Ret == model.RetErr {
		w.Line("void")
	} else {
		w.Linef("%s", retDecl)
	}
	w.Linef("%s (g%s)", c.Name, xsArgList(c))
	w.Linef("      guestfs_h *g;")
	for _, a := range c.Sig.Args {
		w.Linef("      %s%s;", xsArgType(a.Kind), a.Name)
	}
	w.Line("   PREINIT:")
	switch c.Sig.Ret {
	case model.RetErr, model.RetInt, model.RetBool:
		w.Line("      int r;")
	default:
		w.Linef("      %sr;", retDecl)
	}
	w.Line("   PPCODE:")
	w.Writeln()

	for _, a := range c.Sig.Args {
		if a.Kind == model.ArgOptString {
			w.Linef("      if (%s != NULL && %s[0] == '\\0') %s = NULL;", a.Name, a.Name, a.Name)
		}
	}

	w.Write("      r = guestfs_" + c.Name + " (g")
	for _, a := range c.Sig.Args {
		w.Write(", " + a.Name)
	}
	w.Line(");")

	errMarker := genutil.ErrorMarker(c.Sig.Ret)
	w.Linef("      if (r == %s)", errMarker)
	w.Line(`        croak ("%s: %s", "` + c.Name + `", guestfs_last_error (g));`)
	w.Writeln()

	emitXSPush(w, c)
}

func xsArgList(c model.Call) string {
	s := ""
	for _, a := range c.Sig.Args {
		s += ", " + a.Name
	}
	return s
}

func emitXSPush(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetErr:
		w.Line("      /* no return value */")
	case model.RetInt, model.RetBool:
		w.Line("      XPUSHs (sv_2mortal (newSViv (r)));")
	case model.RetConstString, model.RetString:
		w.Line("      XPUSHs (sv_2mortal (newSVpv (r, 0)));")
		if c.Sig.Ret == model.RetString {
			w.Line("      free (r);")
		}
	case model.RetStringList:
		w.Line("      {")
		w.Line("        int i;")
		w.Line("        for (i = 0; r[i] != NULL; ++i) {")
		w.Line("          XPUSHs (sv_2mortal (newSVpv (r[i], 0)));")
		w.Line("          free (r[i]);")
		w.Line("        }")
		w.Line("        free (r);")
		w.Line("      }")
	case model.RetIntBool:
		w.Line("      XPUSHs (sv_2mortal (newSViv (r->i)));")
		w.Line("      XPUSHs (sv_2mortal (newSViv (r->b)));")
		w.Line("      guestfs_free_int_bool (r);")
	case model.RetPVList, model.RetVGList, model.RetLVList:
		kind, _ := listKind(c.Sig.Ret)
		w.Linef("      guestfs_int_perl_push_%s_list (r);", kind)
		w.Linef("      guestfs_free_lvm_%s_list (r);", kind)
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

// EmitPOD writes the prose documentation module (Guestfs.pm): one section
// per call describing its Perl calling convention and behaviour.
func EmitPOD(w *genutil.Writer, calls []model.Call) {
	w.Line("=head1 NAME")
	w.Writeln()
	w.Line("Sys::Guestfs - Perl bindings for the guest filesystem API")
	w.Writeln()
	w.Line("=head1 METHODS")
	w.Writeln()

	for _, c := range calls {
		w.Linef("=head2 $h->%s (%s)", c.Name, perlParamList(c))
		w.Writeln()
		for _, p := range genutil.WrapParagraphs(genutil.RewriteShellRefs(c.LongDesc)) {
			w.Line(p)
			w.Writeln()
		}
		w.Line(perlReturnClause(c.Sig.Ret))
		w.Writeln()
	}
}

func perlParamList(c model.Call) string {
	s := ""
	for i, a := range c.Sig.Args {
		if i > 0 {
			s += ", "
		}
		s += a.Name
	}
	return s
}

func perlReturnClause(ret model.RetKind) string {
	switch ret {
	case model.RetErr:
		return "This method throws an exception on error."
	case model.RetIntBool:
		return "This method returns a two-element list (integer, boolean) and throws an exception on error."
	case model.RetStringList:
		return "This method returns a list of strings and throws an exception on error."
	case model.RetPVList, model.RetVGList, model.RetLVList:
		return "This method returns a list of hashrefs, one per record, and throws an exception on error."
	default:
		return "This method returns a scalar and throws an exception on error."
	}
}
