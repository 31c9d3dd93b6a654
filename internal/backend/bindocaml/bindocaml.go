// Package bindocaml emits the OCaml host binding: the declaration module
// (.mli), the thin implementation module (.ml) that re-exports the C glue,
// and the C glue module itself, which acquires/releases the OCaml runtime
// around every blocking call and raises a host exception on failure.
package bindocaml

import (
	"fmt"
	"strings"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

func ocamlArgType(k model.ArgKind) string {
	switch k {
	case model.ArgString:
		return "string"
	case model.ArgOptString:
		return "string option"
	case model.ArgBool:
		return "bool"
	case model.ArgInt:
		return "int"
	default:
		return "'a"
	}
}

func ocamlRetType(ret model.RetKind) string {
	switch ret {
	case model.RetErr:
		return "unit"
	case model.RetInt:
		return "int"
	case model.RetBool:
		return "bool"
	case model.RetConstString, model.RetString:
		return "string"
	case model.RetStringList:
		return "string array"
	case model.RetIntBool:
		return "int * bool"
	case model.RetPVList:
		return "lvm_pv array"
	case model.RetVGList:
		return "lvm_vg array"
	case model.RetLVList:
		return "lvm_lv array"
	default:
		return "unit"
	}
}

// EmitDecl writes the declaration module (guestfs.mli).
func EmitDecl(w *genutil.Writer, calls []model.Call, records []model.RecordSchema) {
	genutil.WriteBanner(w, genutil.CommentParenStar, genutil.LicenceLGPL)

	w.Line("type t")
	w.Writeln()
	w.Line("exception Error of string")
	w.Writeln()

	for _, rec := range records {
		emitDeclRecord(w, rec)
		w.Writeln()
	}

	w.Line("val create : unit -> t")
	w.Writeln()

	for _, c := range calls {
		w.Linef("(** %s *)", c.ShortDesc)
		w.Linef("val %s : t -> %s", c.Name, declSig(c))
		w.Writeln()
	}
}

func declSig(c model.Call) string {
	s := ""
	for _, a := range c.Sig.Args {
		s += ocamlArgType(a.Kind) + " -> "
	}
	return s + ocamlRetType(c.Sig.Ret)
}

func emitDeclRecord(w *genutil.Writer, rec model.RecordSchema) {
	w.Linef("type lvm_%s = {", rec.Kind)
	for _, col := range rec.Columns {
		w.Linef("  %s : %s;", col.Name, ocamlColType(col.Kind))
	}
	w.Line("}")
}

func ocamlColType(k model.ColKind) string {
	switch k {
	case model.ColString, model.ColUUID:
		return "string"
	case model.ColBytes:
		return "int64"
	case model.ColInt:
		return "int64"
	case model.ColOptPercent:
		return "float"
	default:
		return "string"
	}
}

// EmitImpl writes the implementation module (guestfs.ml): every call is a
// one-line external binding into the C glue, so the .ml body carries no
// logic of its own.
func EmitImpl(w *genutil.Writer, calls []model.Call, records []model.RecordSchema) {
	genutil.WriteBanner(w, genutil.CommentParenStar, genutil.LicenceLGPL)

	w.Line("type t")
	w.Writeln()
	w.Line("exception Error of string")
	w.Line(`let () = Callback.register_exception "guestfs_error" (Error "")`)
	w.Writeln()

	for _, rec := range records {
		emitDeclRecord(w, rec)
		w.Writeln()
	}

	w.Line(`external create : unit -> t = "ocaml_guestfs_create"`)
	w.Writeln()

	for _, c := range calls {
		w.Linef(`external %s : t -> %s = "ocaml_guestfs_%s"`, c.Name, declSig(c), c.Name)
	}
}

// EmitCGlue writes the C glue module (guestfs-c-actions.c): for every call,
// a value-returning stub that unwraps OCaml arguments, calls the client
// action outside the runtime lock, and either raises the registered OCaml
// exception or builds a typed OCaml return value.
func EmitCGlue(w *genutil.Writer, calls []model.Call) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line(`#include <caml/mlvalues.h>`)
	w.Line(`#include <caml/alloc.h>`)
	w.Line(`#include <caml/memory.h>`)
	w.Line(`#include <caml/fail.h>`)
	w.Line(`#include <caml/threads.h>`)
	w.Line(`#include "guestfs.h"`)
	w.Writeln()

	for _, c := range calls {
		emitGlueStub(w, c)
		w.Writeln()
	}
}

func emitGlueStub(w *genutil.Writer, c model.Call) {
	w.Line("CAMLprim value")
	w.Linef("ocaml_guestfs_%s (value gv%s)", c.Name, glueArgList(c))
	w.Line("{")
	w.Line("  " + camlParamDecl(c) + ";")
	w.Line("  CAMLlocal1 (rv);")
	w.Linef("  guestfs_h *g = Guestfs_val (gv);")
	for _, a := range c.Sig.Args {
		emitGlueUnwrap(w, a)
	}
	w.Writeln()

	errMarker := genutil.ErrorMarker(c.Sig.Ret)
	retDecl := genutil.ReturnCType(c.Sig.Ret, false)
	if !strings.HasSuffix(retDecl, "*") {
		retDecl += " "
	}
	w.Line("  caml_release_runtime_system ();")
	w.Write("  " + retDecl + "r = guestfs_" + c.Name + " (g")
	for _, a := range c.Sig.Args {
		w.Write(", " + a.Name + "_c")
	}
	w.Line(");")
	w.Line("  caml_acquire_runtime_system ();")
	w.Writeln()

	w.Linef("  if (r == %s)", errMarker)
	w.Linef(`    caml_raise_with_string (*caml_named_value ("guestfs_error"), guestfs_last_error (g));`)
	w.Writeln()

	emitGlueWrapReturn(w, c)
	w.Line("  CAMLreturn (rv);")
	w.Line("}")
}

// camlParamDecl returns the CAMLparamN/CAMLxparamN declaration registering
// every value-typed parameter the glue stub receives (the handle gv plus one
// per argument) with the OCaml garbage collector. CAMLparam1..5 cover up to
// five values; beyond that, CAMLparam5 takes the first five and each
// further value needs its own CAMLxparam1 line.
func camlParamDecl(c model.Call) string {
	names := append([]string{"gv"}, glueArgNames(c)...)
	if len(names) <= 5 {
		return fmt.Sprintf("CAMLparam%d (%s)", len(names), strings.Join(names, ", "))
	}
	decl := fmt.Sprintf("CAMLparam5 (%s)", strings.Join(names[:5], ", "))
	for _, n := range names[5:] {
		decl += fmt.Sprintf(";\n  CAMLxparam1 (%s)", n)
	}
	return decl
}

func glueArgNames(c model.Call) []string {
	names := make([]string, len(c.Sig.Args))
	for i, a := range c.Sig.Args {
		names[i] = a.Name + "v"
	}
	return names
}

func glueArgList(c model.Call) string {
	s := ""
	for _, a := range c.Sig.Args {
		s += ", value " + a.Name + "v"
	}
	return s
}

func emitGlueUnwrap(w *genutil.Writer, a model.Arg) {
	switch a.Kind {
	case model.ArgString:
		w.Linef("  const char *%s_c = String_val (%sv);", a.Name, a.Name)
	case model.ArgOptString:
		w.Linef("  const char *%s_c = (%sv == Val_int (0)) ? NULL : String_val (Field (%sv, 0));", a.Name, a.Name, a.Name)
	case model.ArgBool:
		w.Linef("  int %s_c = Bool_val (%sv);", a.Name, a.Name)
	case model.ArgInt:
		w.Linef("  int %s_c = Int_val (%sv);", a.Name, a.Name)
	}
}

func emitGlueWrapReturn(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetErr:
		w.Line("  rv = Val_unit;")
	case model.RetInt:
		w.Line("  rv = Val_int (r);")
	case model.RetBool:
		w.Line("  rv = Val_bool (r);")
	case model.RetConstString:
		w.Line("  rv = caml_copy_string (r);")
	case model.RetString:
		w.Line("  rv = caml_copy_string (r);")
		w.Line("  free (r);")
	case model.RetStringList:
		w.Line("  rv = guestfs_int_ocaml_copy_string_array (r);")
		w.Line("  guestfs_int_free_string_list (r);")
	case model.RetIntBool:
		w.Line("  rv = caml_alloc_tuple (2);")
		w.Line("  Store_field (rv, 0, Val_int (r->i));")
		w.Line("  Store_field (rv, 1, Val_bool (r->b));")
		w.Line("  guestfs_free_int_bool (r);")
	case model.RetPVList:
		w.Line("  rv = guestfs_int_ocaml_copy_pv_list (r);")
		w.Line("  guestfs_free_lvm_pv_list (r);")
	case model.RetVGList:
		w.Line("  rv = guestfs_int_ocaml_copy_vg_list (r);")
		w.Line("  guestfs_free_lvm_vg_list (r);")
	case model.RetLVList:
		w.Line("  rv = guestfs_int_ocaml_copy_lv_list (r);")
		w.Line("  guestfs_free_lvm_lv_list (r);")
	}
}
