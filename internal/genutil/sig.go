package genutil

import (
	"strings"

	"github.com/vmguest/apigen/internal/model"
)

// Flavour selects which backend a declaration or call site is being
// formatted for. The argument-kind mapping is the same in every flavour;
// what changes is whether a handle parameter is prepended, which return
// type a composite return kind resolves to, whether the return type sits on
// a line of its own, whether a trailing semicolon and newline are emitted,
// and which identifier prefix is applied. The argument list is always laid
// out on one line.
type Flavour int

const (
	// ClientExtern formats a one-line "extern ..." prototype for the
	// public client action header.
	ClientExtern Flavour = iota
	// ClientDefinition formats the multi-line definition header used at
	// the top of the client stub in the action implementation file.
	ClientDefinition
	// DaemonStub formats a one-line "do_<name>" prototype with no handle
	// parameter, used by the daemon action header.
	DaemonStub
)

// ArgCType maps an argument kind to its C type. string and optional_string
// both render as an immutable text pointer (optional_string's absence is
// represented by a null pointer, not a distinct C type); bool and int both
// render as a signed int.
func ArgCType(k model.ArgKind) string {
	switch k {
	case model.ArgString, model.ArgOptString:
		return "const char *"
	case model.ArgBool, model.ArgInt:
		return "int"
	default:
		return "void *"
	}
}

// publicReturnType is the type a return kind resolves to in
// externally-visible client headers.
func publicReturnType(ret model.RetKind) string {
	switch ret {
	case model.RetErr, model.RetInt, model.RetBool:
		return "int"
	case model.RetConstString:
		return "const char *"
	case model.RetString:
		return "char *"
	case model.RetStringList:
		return "char **"
	case model.RetIntBool:
		return "struct guestfs_int_bool *"
	case model.RetPVList:
		return "struct guestfs_lvm_pv_list *"
	case model.RetVGList:
		return "struct guestfs_lvm_vg_list *"
	case model.RetLVList:
		return "struct guestfs_lvm_lv_list *"
	default:
		return "void"
	}
}

// wireReturnType is the type a return kind resolves to inside the daemon
// build. This is the "different type inside the daemon build" half of the
// §4.4 twist: composite kinds use the "guestfs_int_"-prefixed wire struct
// declared by the wire schema rather than the public struct from the
// public struct header (the two share the same field layout).
func wireReturnType(ret model.RetKind) string {
	switch ret {
	case model.RetErr, model.RetInt, model.RetBool:
		return "int"
	case model.RetString:
		return "char *"
	case model.RetStringList:
		return "char **"
	case model.RetIntBool:
		return "guestfs_int_int_bool *"
	case model.RetPVList:
		return "guestfs_int_lvm_pv_list *"
	case model.RetVGList:
		return "guestfs_int_lvm_vg_list *"
	case model.RetLVList:
		return "guestfs_int_lvm_lv_list *"
	default:
		return "void"
	}
}

// ReturnCType returns the C return type for ret, resolving the
// public/wire split described above.
func ReturnCType(ret model.RetKind, wire bool) string {
	if wire {
		return wireReturnType(ret)
	}
	return publicReturnType(ret)
}

// FormatArgs renders an argument vector as a comma-separated parameter
// list. When withHandle is true a leading "guestfs_h *handle" parameter is
// prepended, matching every client-facing flavour; daemon-stub prototypes
// pass withHandle=false since the daemon has no handle of its own.
func FormatArgs(args []model.Arg, withHandle bool) string {
	var parts []string
	if withHandle {
		parts = append(parts, "guestfs_h *handle")
	}
	for _, a := range args {
		ctype := ArgCType(a.Kind)
		if strings.HasSuffix(ctype, "*") {
			parts = append(parts, ctype+a.Name)
		} else {
			parts = append(parts, ctype+" "+a.Name)
		}
	}
	if len(parts) == 0 {
		return "void"
	}
	return strings.Join(parts, ", ")
}

// FormatPrototype renders a full declaration for call name/sig, in the
// style fixed by flavour. It always ends with a trailing semicolon and
// newline except for ClientDefinition, which omits both (the caller is
// about to open a function body, not declare one).
func FormatPrototype(name string, sig model.Signature, flavour Flavour) string {
	switch flavour {
	case ClientExtern:
		ret := ReturnCType(sig.Ret, false)
		return "extern " + ret + " guestfs_" + name + " (" + FormatArgs(sig.Args, true) + ");\n"
	case ClientDefinition:
		ret := ReturnCType(sig.Ret, false)
		return ret + "\nguestfs_" + name + " (" + FormatArgs(sig.Args, true) + ")"
	case DaemonStub:
		ret := ReturnCType(sig.Ret, true)
		return "extern " + ret + " do_" + name + " (" + FormatArgs(sig.Args, false) + ");\n"
	default:
		return ""
	}
}

// ErrorMarker is the literal C expression returned on failure for ret, per
// §7: -1 for err/int/bool, NULL for every pointer-shaped kind including
// const_string.
func ErrorMarker(ret model.RetKind) string {
	switch ret {
	case model.RetErr, model.RetInt, model.RetBool:
		return "-1"
	default:
		return "NULL"
	}
}
