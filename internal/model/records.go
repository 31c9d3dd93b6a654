package model

// ColKind is the closed set of column types in an LVM record schema.
type ColKind int

const (
	ColString ColKind = iota
	ColUUID            // fixed 32 bytes, not null-terminated
	ColBytes           // unsigned 64-bit
	ColInt             // signed 64-bit
	ColOptPercent      // float in [0,100], or -1 meaning "not present"
)

func (k ColKind) String() string {
	switch k {
	case ColString:
		return "string"
	case ColUUID:
		return "uuid"
	case ColBytes:
		return "bytes"
	case ColInt:
		return "int"
	case ColOptPercent:
		return "opt_percent"
	default:
		return "unknown_col_kind"
	}
}

// Column is one ordered field of a record schema. Order is significant: it
// fixes the wire layout, the public C struct layout, the host-binding
// record layout, and the `lvm --separator ,` tokenisation order.
type Column struct {
	Name string
	Kind ColKind
}

// RecordSchema is the ordered field list of one LVM record kind.
type RecordSchema struct {
	Kind    string // "pv", "vg", or "lv"
	CType   string // C struct tag, e.g. "guestfs_lvm_pv"
	Columns []Column
}

// PVSchema, VGSchema and LVSchema are the three fixed record schemas.
// Column order here is the single source of truth for every backend that
// lays out these records: wire structs, public C structs, host-binding
// records and lvm(8) tokenisation all derive their order from this slice.
var (
	PVSchema = RecordSchema{
		Kind:  "pv",
		CType: "guestfs_lvm_pv",
		Columns: []Column{
			{"pv_name", ColString},
			{"pv_uuid", ColUUID},
			{"pv_fmt", ColString},
			{"pv_size", ColBytes},
			{"dev_size", ColBytes},
			{"pv_free", ColBytes},
			{"pv_used", ColBytes},
			{"pv_attr", ColString},
			{"pv_pe_count", ColInt},
			{"pv_pe_alloc_count", ColInt},
			{"pv_tags", ColString},
			{"pe_start", ColBytes},
			{"pv_mda_count", ColInt},
			{"pv_mda_free", ColBytes},
		},
	}

	VGSchema = RecordSchema{
		Kind:  "vg",
		CType: "guestfs_lvm_vg",
		Columns: []Column{
			{"vg_name", ColString},
			{"vg_uuid", ColUUID},
			{"vg_fmt", ColString},
			{"vg_attr", ColString},
			{"vg_size", ColBytes},
			{"vg_free", ColBytes},
			{"vg_sysid", ColString},
			{"vg_extent_size", ColBytes},
			{"vg_extent_count", ColInt},
			{"vg_free_count", ColInt},
			{"max_lv", ColInt},
			{"max_pv", ColInt},
			{"pv_count", ColInt},
			{"lv_count", ColInt},
			{"snap_count", ColInt},
			{"vg_seqno", ColInt},
			{"vg_tags", ColString},
			{"vg_mda_count", ColInt},
			{"vg_mda_free", ColBytes},
		},
	}

	LVSchema = RecordSchema{
		Kind:  "lv",
		CType: "guestfs_lvm_lv",
		Columns: []Column{
			{"lv_name", ColString},
			{"lv_uuid", ColUUID},
			{"lv_attr", ColString},
			{"lv_major", ColInt},
			{"lv_minor", ColInt},
			{"lv_kernel_major", ColInt},
			{"lv_kernel_minor", ColInt},
			{"lv_size", ColBytes},
			{"seg_count", ColInt},
			{"origin", ColString},
			{"snap_percent", ColOptPercent},
			{"copy_percent", ColOptPercent},
			{"move_pv", ColString},
			{"lv_tags", ColString},
			{"mirror_log", ColString},
			{"modules", ColString},
		},
	}
)

// Schemas returns the three record schemas in the fixed order PV, VG, LV —
// every backend that emits "for each LVM kind" output iterates this slice
// so the order is identical everywhere.
func Schemas() []RecordSchema {
	return []RecordSchema{PVSchema, VGSchema, LVSchema}
}
