// Package daemondispatch emits the daemon's dispatch stubs: one decode/call/
// reply stub per daemon call, the top-level switch that picks a stub by
// procedure number, and — for each LVM record kind — the comma-line
// tokenizer and the /sbin/lvm-invoking list builder that feed it.
package daemondispatch

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// Emit writes the complete daemon dispatch file for calls and records to w.
func Emit(w *genutil.Writer, calls []model.Call, records []model.RecordSchema) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line(`#include <stdio.h>`)
	w.Line(`#include <stdlib.h>`)
	w.Line(`#include <string.h>`)
	w.Line(`#include "daemon.h"`)
	w.Line(`#include "daemon-actions.h"`)
	w.Line(`#include "guestfs_protocol.h"`)
	w.Writeln()

	for _, c := range calls {
		if !c.IsDaemon() {
			continue
		}
		emitStub(w, c)
		w.Writeln()
	}

	emitDispatch(w, calls)
	w.Writeln()

	for _, rec := range records {
		emitTokenizer(w, rec)
		w.Writeln()
		emitLister(w, rec)
		w.Writeln()
	}
}

func emitStub(w *genutil.Writer, c model.Call) {
	errMarker := genutil.ErrorMarker(c.Sig.Ret)

	w.Linef("static void")
	w.Linef("%s_stub (XDR *xdr_in)", c.Name)
	w.Line("{")
	if len(c.Sig.Args) > 0 {
		w.Linef("  struct %s_args args;", c.Name)
	}
	retDecl := genutil.ReturnCType(c.Sig.Ret, true)
	switch c.Sig.Ret {
	case model.RetErr, model.RetInt, model.RetBool:
		w.Line("  int r;")
	default:
		w.Linef("  %sr;", retDecl)
	}
	w.Writeln()

	if len(c.Sig.Args) > 0 {
		w.Line("  memset (&args, 0, sizeof args);")
		w.Linef("  if (!xdr_%s_args (xdr_in, &args)) {", c.Name)
		w.Linef(`    reply_with_error ("%s: failed to decode arguments");`, c.Name)
		w.Line("    return;")
		w.Line("  }")
		w.Writeln()
	}

	w.Write("  r = do_" + c.Name + " (")
	for i, a := range c.Sig.Args {
		if i > 0 {
			w.Write(", ")
		}
		w.Write("args." + a.Name)
	}
	w.Line(");")
	w.Linef("  if (r == %s) {", errMarker)
	w.Line("    /* do_" + c.Name + " has already sent its own error reply */")
	w.Line("    return;")
	w.Line("  }")
	w.Writeln()

	if c.Sig.Ret == model.RetErr {
		w.Linef(`  reply (NULL, NULL);`)
	} else {
		w.Linef("  struct %s_ret ret;", c.Name)
		assignRetFields(w, c)
		w.Linef("  reply ((xdrproc_t) xdr_%s_ret, (char *) &ret);", c.Name)
	}
	w.Writeln()
	emitFree(w, c)
	w.Line("}")
}

func assignRetFields(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetInt, model.RetBool:
		w.Linef("  ret.%s = r;", c.RetField)
	case model.RetString:
		w.Linef("  ret.%s = r;", c.RetField)
	case model.RetStringList:
		w.Linef("  ret.%s.%s_val = r;", c.RetField, c.RetField)
		w.Linef("  ret.%s.%s_len = guestfs_int_count_strings (r);", c.RetField, c.RetField)
	case model.RetIntBool:
		w.Linef("  ret.%s_i = r->i;", c.RetField)
		w.Linef("  ret.%s_b = r->b;", c.RetField)
	case model.RetPVList, model.RetVGList, model.RetLVList:
		w.Linef("  ret.%s = *r;", c.RetField)
	}
}

func emitFree(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetString:
		w.Line("  free (r);")
	case model.RetStringList:
		w.Line("  guestfs_int_free_string_list (r);")
	case model.RetIntBool, model.RetPVList, model.RetVGList, model.RetLVList:
		w.Line("  free (r);")
	}
}

func emitDispatch(w *genutil.Writer, calls []model.Call) {
	w.Line("void")
	w.Line("dispatch_incoming_message (int proc, XDR *xdr_in)")
	w.Line("{")
	w.Line("  switch (proc) {")
	for _, c := range calls {
		if !c.IsDaemon() {
			continue
		}
		w.Linef("  case GUESTFS_PROC_%s:", upper(c.Name))
		w.Linef("    %s_stub (xdr_in);", c.Name)
		w.Line("    break;")
	}
	w.Line("  default:")
	w.Linef(`    reply_with_error ("dispatch_incoming_message: unknown procedure number %%d", proc);`)
	w.Line("  }")
	w.Line("}")
}

func emitTokenizer(w *genutil.Writer, rec model.RecordSchema) {
	w.Linef("/* Parse one line of `lvm %ss --separator ,` output into *%s.", rec.Kind, rec.Kind)
	w.Line(" * Returns -1 and sends an error reply for any malformed line:")
	w.Line(" * null input, an empty or whitespace-leading line, too few tokens,")
	w.Line(" * an unparseable token, or surplus trailing tokens. */")
	w.Linef("static int")
	w.Linef("parse_%s_line (char *line, struct guestfs_int_lvm_%s *%s)", rec.Kind, rec.Kind, rec.Kind)
	w.Line("{")
	w.Line("  char *p, *next;")
	w.Writeln()
	w.Line("  if (line == NULL) {")
	w.Linef(`    reply_with_error ("parse_%s_line: null input");`, rec.Kind)
	w.Line("    return -1;")
	w.Line("  }")
	w.Line("  if (line[0] == '\\0' || isspace ((unsigned char) line[0])) {")
	w.Linef(`    reply_with_error ("parse_%s_line: empty or leading-whitespace line");`, rec.Kind)
	w.Line("    return -1;")
	w.Line("  }")
	w.Writeln()
	w.Line("  next = line;")
	for _, col := range rec.Columns {
		w.Linef("  p = strsep (&next, \",\");")
		w.Line("  if (p == NULL) {")
		w.Linef(`    reply_with_error ("parse_%s_line: missing token for %s");`, rec.Kind, col.Name)
		w.Line("    return -1;")
		w.Line("  }")
		emitColumnParse(w, rec.Kind, col)
	}
	w.Line("  if (next != NULL) {")
	w.Linef(`    reply_with_error ("parse_%s_line: surplus trailing tokens");`, rec.Kind)
	w.Line("    return -1;")
	w.Line("  }")
	w.Writeln()
	w.Line("  return 0;")
	w.Line("}")
}

func emitColumnParse(w *genutil.Writer, kind string, col model.Column) {
	target := kind + "->" + col.Name
	switch col.Kind {
	case model.ColString:
		w.Linef("  %s = strdup (p);", target)
	case model.ColUUID:
		w.Linef("  /* copy 32 bytes, skipping any '-' separators */")
		w.Line("  {")
		w.Line("    int i, j;")
		w.Linef("    for (i = 0, j = 0; p[i] != '\\0' && j < 32; ++i)")
		w.Line("      if (p[i] != '-')")
		w.Linef("        %s[j++] = p[i];", target)
		w.Line("  }")
	case model.ColBytes:
		w.Line("  {")
		w.Line("    char *pend;")
		w.Linef("    %s = strtoull (p, &pend, 10);", target)
		w.Line("    if (pend == p) {")
		w.Linef(`      reply_with_error ("parse_%s_line: failed to parse size for %s");`, kind, col.Name)
		w.Line("      return -1;")
		w.Line("    }")
		w.Line("  }")
	case model.ColInt:
		w.Line("  {")
		w.Line("    char *pend;")
		w.Linef("    %s = strtoll (p, &pend, 10);", target)
		w.Line("    if (pend == p) {")
		w.Linef(`      reply_with_error ("parse_%s_line: failed to parse integer for %s");`, kind, col.Name)
		w.Line("      return -1;")
		w.Line("    }")
		w.Line("  }")
	case model.ColOptPercent:
		w.Line("  if (p[0] == '\\0') {")
		w.Linef("    %s = -1;", target)
		w.Line("  } else {")
		w.Line("    char *pend;")
		w.Linef("    %s = strtof (p, &pend);", target)
		w.Line("    if (pend == p) {")
		w.Linef(`      reply_with_error ("parse_%s_line: failed to parse percentage for %s");`, kind, col.Name)
		w.Line("      return -1;")
		w.Line("    }")
		w.Line("  }")
	}
}

func emitLister(w *genutil.Writer, rec model.RecordSchema) {
	cols := ""
	for i, col := range rec.Columns {
		if i > 0 {
			cols += ","
		}
		cols += col.Name
	}

	w.Linef("/* Run `lvm %ss ...` and tokenise each line into a fresh list entry. */", rec.Kind)
	w.Linef("guestfs_int_lvm_%s_list *", rec.Kind)
	w.Linef("do_lvm_get_%ss (void)", rec.Kind)
	w.Line("{")
	w.Line("  FILE *fp;")
	w.Line("  char line[4096];")
	w.Linef("  guestfs_int_lvm_%s_list *r;", rec.Kind)
	w.Linef("  char cmd[256];")
	w.Writeln()
	w.Linef(`  snprintf (cmd, sizeof cmd,`)
	w.Linef(`            "/sbin/lvm %ss --unbuffered --noheadings --nosuffix "`, rec.Kind)
	w.Linef(`            "--separator , --units b -o %s");`, cols)
	w.Writeln()
	w.Line(`  fp = popen (cmd, "r");`)
	w.Line("  if (fp == NULL) {")
	w.Linef(`    reply_with_error ("do_lvm_get_%ss: /sbin/lvm: %%m");`, rec.Kind)
	w.Line("    return NULL;")
	w.Line("  }")
	w.Writeln()
	w.Line("  r = calloc (1, sizeof *r);")
	w.Line("  while (fgets (line, sizeof line, fp) != NULL) {")
	w.Line("    char *p = line;")
	w.Line("    while (isspace ((unsigned char) *p))")
	w.Line("      p++;")
	w.Line("    if (*p == '\\0')")
	w.Line("      continue; /* blank line */")
	w.Writeln()
	w.Linef("    r->val = realloc (r->val, (r->len + 1) * sizeof (struct guestfs_int_lvm_%s));", rec.Kind)
	w.Linef("    if (parse_%s_line (p, &r->val[r->len]) == -1) {", rec.Kind)
	w.Line("      pclose (fp);")
	w.Line("      free (r->val);")
	w.Line("      free (r);")
	w.Line("      return NULL;")
	w.Line("    }")
	w.Line("    r->len++;")
	w.Line("  }")
	w.Line("  pclose (fp);")
	w.Writeln()
	w.Line("  return r;")
	w.Line("}")
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
