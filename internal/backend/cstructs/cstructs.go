// Package cstructs emits the public, caller-visible struct header: the
// int_and_bool pair and, for each LVM record, a plain struct mirroring the
// wire layout bit-for-bit plus its matching length+array container. The
// client library transfers these by plain copy from the wire structs, so
// field order, width and type must agree exactly with model.RecordSchema.
package cstructs

import (
	"github.com/vmguest/apigen/internal/genutil"
	"github.com/vmguest/apigen/internal/model"
)

func cColType(k model.ColKind) string {
	switch k {
	case model.ColString:
		return "char *"
	case model.ColUUID:
		return "char " // width is appended by the caller as "[32]"
	case model.ColBytes:
		return "uint64_t "
	case model.ColInt:
		return "int64_t "
	case model.ColOptPercent:
		return "float "
	default:
		return "int "
	}
}

// Emit writes the public struct header for records to w.
func Emit(w *genutil.Writer, records []model.RecordSchema) {
	genutil.WriteBanner(w, genutil.CommentSlashStar, genutil.LicenceLGPL)

	w.Line("#ifndef GUESTFS_STRUCTS_H_")
	w.Line("#define GUESTFS_STRUCTS_H_")
	w.Writeln()
	w.Line("#include <stdint.h>")
	w.Writeln()

	w.Line("struct guestfs_int_bool {")
	w.Line("  int32_t i;")
	w.Line("  int32_t b;")
	w.Line("};")
	w.Writeln()

	for _, rec := range records {
		emitRecord(w, rec)
		w.Writeln()
		emitList(w, rec)
		w.Writeln()
	}

	w.Line("#endif /* GUESTFS_STRUCTS_H_ */")
}

func emitRecord(w *genutil.Writer, rec model.RecordSchema) {
	w.Linef("struct %s {", rec.CType)
	for _, col := range rec.Columns {
		if col.Kind == model.ColUUID {
			w.Linef("  %s%s[32]; /* this is NOT nul-terminated, be careful when printing it */", cColType(col.Kind), col.Name)
			continue
		}
		w.Linef("  %s%s;%s", cColType(col.Kind), col.Name, optPercentNote(col))
	}
	w.Line("};")
}

func optPercentNote(col model.Column) string {
	if col.Kind == model.ColOptPercent {
		return ` /* [0..100] or -1 meaning "not present" */`
	}
	return ""
}

func emitList(w *genutil.Writer, rec model.RecordSchema) {
	w.Linef("struct %s_list {", rec.CType)
	w.Linef("  uint32_t len;")
	w.Linef("  struct %s *val;", rec.CType)
	w.Line("};")
}
