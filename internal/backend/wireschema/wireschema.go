// Package wireschema emits the RPC interface description (an XDR-style
// ".x" file) consumed by an external RPC-stub generator to produce the
// wire (de)serialisers for every daemon call's _args/_ret structs, the
// three LVM records, and the message envelope.
package wireschema

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

const (
	maxMessageSize  = 4 * 1024 * 1024
	programIdentity = 0x2000F5F5
	protocolVersion = 1
	maxErrorLength  = 256
)

func wireColType(k model.ColKind) string {
	switch k {
	case model.ColString:
		return "string"
	case model.ColUUID:
		return "opaque"
	case model.ColBytes, model.ColInt:
		return "hyper"
	case model.ColOptPercent:
		return "float"
	default:
		return "int"
	}
}

// Emit writes the complete wire schema for calls and records to w.
func Emit(w *genutil.Writer, calls []model.Call, records []model.RecordSchema) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line("typedef string str<>;")
	w.Writeln()

	for _, rec := range records {
		emitRecord(w, rec)
		w.Writeln()
	}

	for _, c := range calls {
		if c.IsDaemon() && len(c.Sig.Args) > 0 {
			emitArgsStruct(w, c)
			w.Writeln()
		}
		if c.IsDaemon() && c.Sig.Ret != model.RetErr {
			emitRetStruct(w, c)
			w.Writeln()
		}
	}

	emitProcEnum(w, calls)
	w.Writeln()

	w.Linef("const GUESTFS_MESSAGE_MAX = %d;", maxMessageSize)
	w.Linef("const GUESTFS_PROGRAM = 0x%X;", programIdentity)
	w.Linef("const GUESTFS_PROTOCOL_VERSION = %d;", protocolVersion)
	w.Writeln()

	w.Line("enum guestfs_message_direction {")
	w.Line("  GUESTFS_DIRECTION_CALL = 0,   /* client -> daemon */")
	w.Line("  GUESTFS_DIRECTION_REPLY = 1   /* daemon -> client */")
	w.Line("};")
	w.Writeln()

	w.Line("enum guestfs_message_status {")
	w.Line("  GUESTFS_STATUS_OK = 0,")
	w.Line("  GUESTFS_STATUS_ERROR = 1")
	w.Line("};")
	w.Writeln()

	w.Linef("const GUESTFS_ERROR_LEN = %d;", maxErrorLength)
	w.Writeln()
	w.Line("struct guestfs_message_error {")
	w.Line("  str error_message<GUESTFS_ERROR_LEN>;")
	w.Line("};")
	w.Writeln()

	w.Line("struct guestfs_message_header {")
	w.Line("  unsigned prog;          /* GUESTFS_PROGRAM */")
	w.Line("  unsigned vers;          /* GUESTFS_PROTOCOL_VERSION */")
	w.Line("  guestfs_procedure proc; /* GUESTFS_PROC_x */")
	w.Line("  guestfs_message_direction direction;")
	w.Line("  unsigned serial;        /* message serial number */")
	w.Line("  guestfs_message_status status;")
	w.Line("};")
}

func emitRecord(w *genutil.Writer, rec model.RecordSchema) {
	w.Linef("struct guestfs_int_lvm_%s {", rec.Kind)
	for _, col := range rec.Columns {
		switch col.Kind {
		case model.ColUUID:
			w.Linef("  opaque %s[32];", col.Name)
		default:
			w.Linef("  %s %s;", wireColType(col.Kind), col.Name)
		}
	}
	w.Line("};")
	w.Writeln()
	w.Linef("typedef struct guestfs_int_lvm_%s guestfs_int_lvm_%s_list<>;", rec.Kind, rec.Kind)
}

func emitArgsStruct(w *genutil.Writer, c model.Call) {
	w.Linef("struct %s_args {", c.Name)
	for _, a := range c.Sig.Args {
		switch a.Kind {
		case model.ArgString:
			w.Linef("  str %s;", a.Name)
		case model.ArgOptString:
			w.Linef("  str *%s;", a.Name)
		case model.ArgBool:
			w.Linef("  bool %s;", a.Name)
		case model.ArgInt:
			w.Linef("  int %s;", a.Name)
		}
	}
	w.Line("};")
}

func emitRetStruct(w *genutil.Writer, c model.Call) {
	w.Linef("struct %s_ret {", c.Name)
	switch c.Sig.Ret {
	case model.RetInt:
		w.Linef("  int %s;", c.RetField)
	case model.RetBool:
		w.Linef("  bool %s;", c.RetField)
	case model.RetConstString, model.RetString:
		w.Linef("  str %s;", c.RetField)
	case model.RetStringList:
		w.Linef("  str %s<>;", c.RetField)
	case model.RetIntBool:
		w.Linef("  int %s_i;", c.RetField)
		w.Linef("  bool %s_b;", c.RetField)
	case model.RetPVList:
		w.Linef("  guestfs_int_lvm_pv_list %s;", c.RetField)
	case model.RetVGList:
		w.Linef("  guestfs_int_lvm_vg_list %s;", c.RetField)
	case model.RetLVList:
		w.Linef("  guestfs_int_lvm_lv_list %s;", c.RetField)
	}
	w.Line("};")
}

func emitProcEnum(w *genutil.Writer, calls []model.Call) {
	w.Line("enum guestfs_procedure {")
	for _, c := range calls {
		if !c.IsDaemon() {
			continue
		}
		w.Linef("  GUESTFS_PROC_%s = %d,", upper(c.Name), c.Proc)
	}
	w.Line("  GUESTFS_PROC_DUMMY = 9999 /* so we don't have a trailing comma */")
	w.Line("};")
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
