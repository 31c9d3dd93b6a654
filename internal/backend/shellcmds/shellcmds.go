// Package shellcmds emits the interactive shell's command-dispatch file:
// the alphabetical command table, a per-command help body, a per-command
// argument-coercing runner, and the top-level dispatcher that ties them
// together. Calls flagged not-in-shell are excluded from every part of
// this backend; every other backend still includes them.
package shellcmds

import (
	"sort"

	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

// shellVisible returns the calls that appear in the shell, sorted
// alphabetically by their shell-facing (hyphenated) name.
func shellVisible(calls []model.Call) []model.Call {
	var out []model.Call
	for _, c := range calls {
		if !c.Flags.NotInShell {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return genutil.Hyphenate(out[i].Name) < genutil.Hyphenate(out[j].Name)
	})
	return out
}

// Emit writes the complete shell dispatcher file for calls to w.
func Emit(w *genutil.Writer, calls []model.Call) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceGPL)

	w.Line(`#include <stdio.h>`)
	w.Line(`#include <stdlib.h>`)
	w.Line(`#include <string.h>`)
	w.Line(`#include <ctype.h>`)
	w.Line(`#include "guestfs.h"`)
	w.Line(`#include "fish.h"`)
	w.Writeln()

	visible := shellVisible(calls)

	emitCommandTable(w, visible)
	w.Writeln()
	for _, c := range visible {
		emitHelp(w, c)
		w.Writeln()
		emitRunner(w, c)
		w.Writeln()
	}
	emitTopDispatch(w, visible)
}

func emitCommandTable(w *genutil.Writer, visible []model.Call) {
	w.Line("static const struct { const char *name; const char *shortdesc; } commands[] = {")
	for _, c := range visible {
		w.Linef("  { %q, %q },", genutil.Hyphenate(c.Name), c.ShortDesc)
	}
	w.Line("};")
}

func synopsisPlaceholder(a model.Arg) string {
	switch a.Kind {
	case model.ArgBool:
		return "<true|false>"
	default:
		return "<" + a.Name + ">"
	}
}

func emitHelp(w *genutil.Writer, c model.Call) {
	name := genutil.Hyphenate(c.Name)

	w.Linef("static void")
	w.Linef("help_%s (void)", c.Name)
	w.Line("{")
	w.Write("  printf (\"" + name)
	for _, a := range c.Sig.Args {
		w.Write(" " + synopsisPlaceholder(a))
	}
	w.Line("\\n\");")
	w.Writeln()

	for _, p := range genutil.WrapParagraphs(genutil.RewriteShellRefs(c.LongDesc)) {
		w.Linef("  printf (%q);", p)
		w.Line(`  printf ("\n\n");`)
	}

	if c.Flags.ProtocolLimitWarning {
		w.Line(`  printf ("This long-running command can transfer up to 2-4MB of data.\n");`)
	}
	if c.Flags.ShellAlias != "" {
		w.Linef(`  printf ("You can use '%%s' as an alias for this command.\n", %q);`, c.Flags.ShellAlias)
	}
	w.Line("}")
}

func argCoerceComment(a model.Arg) string {
	switch a.Kind {
	case model.ArgString:
		return "verbatim"
	case model.ArgOptString:
		return "empty token collapses to absent"
	case model.ArgBool:
		return "parsed by truth-value"
	case model.ArgInt:
		return "parsed by decimal"
	default:
		return ""
	}
}

func emitRunner(w *genutil.Writer, c model.Call) {
	w.Linef("static int")
	w.Linef("run_%s (const char *cmd, int argc, char *argv[])", c.Name)
	w.Line("{")
	w.Linef("  if (argc != %d) {", len(c.Sig.Args))
	w.Linef(`    fprintf (stderr, "%%s: incorrect number of arguments, see 'help %%s'\n", cmd, cmd);`)
	w.Line("    return -1;")
	w.Line("  }")
	w.Writeln()

	for i, a := range c.Sig.Args {
		w.Linef("  /* %s: %s */", a.Name, argCoerceComment(a))
		switch a.Kind {
		case model.ArgString:
			w.Linef("  const char *%s = argv[%d];", a.Name, i)
		case model.ArgOptString:
			w.Linef("  const char *%s = (argv[%d][0] == '\\0') ? NULL : argv[%d];", a.Name, i, i)
		case model.ArgBool:
			w.Linef("  int %s = is_true (argv[%d]);", a.Name, i)
		case model.ArgInt:
			w.Linef("  int %s = atoi (argv[%d]);", a.Name, i)
		}
	}
	w.Writeln()

	fn := "guestfs_" + c.Name
	if c.Flags.ShellAction != "" {
		fn = c.Flags.ShellAction
	}

	switch c.Sig.Ret {
	case model.RetErr:
		w.Write("  int r = " + fn + " (g")
	case model.RetBool:
		w.Write("  int r = " + fn + " (g")
	default:
		w.Write("  " + genutil.ReturnCType(c.Sig.Ret, false) + " r = " + fn + " (g")
	}
	for _, a := range c.Sig.Args {
		w.Write(", " + a.Name)
	}
	w.Line(");")
	w.Writeln()

	emitRunnerFailureCheck(w, c)
	emitRunnerFormat(w, c)
	w.Line("  return 0;")
	w.Line("}")
}

func emitRunnerFailureCheck(w *genutil.Writer, c model.Call) {
	marker := genutil.ErrorMarker(c.Sig.Ret)
	w.Linef("  if (r == %s)", marker)
	w.Line("    return -1;")
	w.Writeln()
}

func emitRunnerFormat(w *genutil.Writer, c model.Call) {
	switch c.Sig.Ret {
	case model.RetErr:
		return
	case model.RetBool:
		w.Line(`  printf ("%s\n", r ? "true" : "false");`)
	case model.RetInt:
		w.Line(`  printf ("%d\n", r);`)
	case model.RetConstString, model.RetString:
		w.Line(`  printf ("%s\n", r);`)
	case model.RetStringList:
		w.Line("  print_strings (r);")
	case model.RetIntBool:
		w.Line(`  printf ("%d %s\n", r->i, r->b ? "true" : "false");`)
	case model.RetPVList:
		w.Line("  print_pv_list (r);")
	case model.RetVGList:
		w.Line("  print_vg_list (r);")
	case model.RetLVList:
		w.Line("  print_lv_list (r);")
	}
}

func emitTopDispatch(w *genutil.Writer, visible []model.Call) {
	w.Line("int")
	w.Line("run_action (const char *cmd, int argc, char *argv[])")
	w.Line("{")
	for _, c := range visible {
		name := genutil.Hyphenate(c.Name)
		candidates := []string{name, c.Name}
		if c.Flags.ShellAlias != "" {
			candidates = append(candidates, c.Flags.ShellAlias)
		}
		cond := ""
		for i, cand := range candidates {
			if i > 0 {
				cond += " || "
			}
			cond += "fold_eq (cmd, \"" + cand + "\")"
		}
		w.Linef("  if (%s)", cond)
		w.Linef("    return run_%s (cmd, argc, argv);", c.Name)
	}
	w.Writeln()
	w.Line(`  fprintf (stderr, "%s: unknown command\n", cmd);`)
	w.Line("  return -1;")
	w.Line("}")
}
