package main

import (
	"fmt"
	"path/filepath"

	"github.com/vmguest/apigen/internal/backend/bindocaml"
	"github.com/vmguest/apigen/internal/backend/bindperl"
	"github.com/vmguest/apigen/internal/backend/clientheader"
	"github.com/vmguest/apigen/internal/backend/clientimpl"
	"github.com/vmguest/apigen/internal/backend/cstructs"
	"github.com/vmguest/apigen/internal/backend/daemondispatch"
	"github.com/vmguest/apigen/internal/backend/daemonheader"
	"github.com/vmguest/apigen/internal/backend/docs"
	"github.com/vmguest/apigen/internal/backend/shellcmds"
	"github.com/vmguest/apigen/internal/backend/wireschema"
	"github.com/vmguest/apigen/internal/config"
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
	"github.com/vmguest/apigen/internal/sink"
	"github.com/vmguest/apigen/internal/validate"
)

// target is one generated artefact: a relative path under OutDir and the
// emit function that renders it.
type target struct {
	path string
	emit func(w *genutil.Writer)
}

// buildTargets returns the full, fixed list of fifteen artefacts the
// driver writes, in the order named in the project's own design notes.
func buildTargets(calls []model.Call, records []model.RecordSchema) []target {
	return []target{
		{"guestfs_protocol.x", func(w *genutil.Writer) { wireschema.Emit(w, calls, records) }},
		{"guestfs-structs.h", func(w *genutil.Writer) { cstructs.Emit(w, records) }},
		{"guestfs-actions.h", func(w *genutil.Writer) { clientheader.Emit(w, calls) }},
		{"guestfs-actions.c", func(w *genutil.Writer) { clientimpl.Emit(w, calls) }},
		{"daemon-actions.h", func(w *genutil.Writer) { daemonheader.Emit(w, calls) }},
		{"daemon-stubs.c", func(w *genutil.Writer) { daemondispatch.Emit(w, calls, records) }},
		{"fish-cmds.c", func(w *genutil.Writer) { shellcmds.Emit(w, calls) }},
		{"guestfish-commands.pod", func(w *genutil.Writer) { docs.EmitCommands(w, calls) }},
		{"guestfs-actions.pod", func(w *genutil.Writer) { docs.EmitActions(w, calls) }},
		{"guestfs-structs.pod", func(w *genutil.Writer) { docs.EmitStructs(w, records) }},
		{"guestfs.mli", func(w *genutil.Writer) { bindocaml.EmitDecl(w, calls, records) }},
		{"guestfs.ml", func(w *genutil.Writer) { bindocaml.EmitImpl(w, calls, records) }},
		{"guestfs-c-actions.c", func(w *genutil.Writer) { bindocaml.EmitCGlue(w, calls) }},
		{"Guestfs.xs", func(w *genutil.Writer) { bindperl.EmitXS(w, calls) }},
		{"Guestfs.pm", func(w *genutil.Writer) { bindperl.EmitPOD(w, calls) }},
	}
}

// runGenerate builds the model, validates it, and writes every target
// artefact under opts.ResolveOutDir(). It returns the first error
// encountered; a target whose emission fails is never published, and its
// ".new" staging file is removed by sink.Sink.Abort.
func runGenerate(opts config.Options) error {
	calls := model.Calls()
	records := model.Schemas()

	if err := validate.Validate(calls); err != nil {
		return fmt.Errorf("model is invalid: %w", err)
	}

	targets := buildTargets(calls, records)

	if opts.List {
		for _, t := range targets {
			fmt.Println(filepath.Join(opts.ResolveOutDir(), t.path))
		}
		return nil
	}

	for _, t := range targets {
		if err := writeTarget(opts, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTarget(opts config.Options, t target) error {
	full := filepath.Join(opts.ResolveOutDir(), t.path)

	s, err := sink.Open(full, log)
	if err != nil {
		return err
	}

	w := genutil.NewWriter(s)
	t.emit(w)
	if err := w.Err(); err != nil {
		s.Abort()
		return err
	}

	return s.Close()
}
