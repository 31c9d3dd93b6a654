package model

// Calls returns the API table. It is rebuilt on every call (the table is a
// handful of struct literals; there is no reason to cache it) so that
// nothing in the generator can accidentally mutate shared state between
// backends.
//
// The set below is illustrative rather than exhaustive, but it exercises
// every argument kind, every return kind, every argument-vector size (0
// through 3), every flag, and both daemon and client-only calls, so every
// backend sees at least one call of each shape it must handle.
func Calls() []Call {
	return []Call{
		{
			Name: "sync",
			Sig:  Signature{Ret: RetErr},
			Proc: 1,
			ShortDesc: "sync disks, writes are flushed through to the disk image",
			LongDesc: "This syncs the disk, which writes any unwritten data to the\n" +
				"disk image.\n\n" +
				"You should always call this function after writing to the\n" +
				"disk with C<guestfs_write> or similar functions",
		},
		{
			Name: "touch",
			Sig:  Signature{Ret: RetErr, Args: []Arg{{"path", ArgString}}},
			Proc: 3,
			ShortDesc: "update file timestamps or create a new file",
			LongDesc: "Touch acts like the L<touch(1)> command. It can be used to\n" +
				"update the timestamps on a file, or, if the file does not exist,\n" +
				"to create a new zero-length file.\n\n" +
				"This call only works for regular files, and will fail on other\n" +
				"file types such as directories, symbolic links, block special etc",
		},
		{
			Name:     "cat",
			Sig:      Signature{Ret: RetString, Args: []Arg{{"path", ArgString}}},
			Proc:     4,
			Flags:    Flag{ProtocolLimitWarning: true},
			RetField: "content",
			ShortDesc: "list the contents of a file",
			LongDesc: "Return the contents of the file named C<path>.\n\n" +
				"Note that this function cannot correctly handle binary files\n" +
				"(specifically files containing C<\\0> character which is treated\n" +
				"as end of string). For those you need to use the C<guestfs_read_file>\n" +
				"function which has a more complex interface",
		},
		{
			Name:  "set_path",
			Sig:   Signature{Ret: RetErr, Args: []Arg{{"path", ArgString}}},
			Proc:  NoProcedure,
			Flags: Flag{ShellAlias: "path"},
			ShortDesc: "set the search path",
			LongDesc: "Set the path that is used to search for supermin appliance,\n" +
				"the path is ignored by anything except the handle's own bootstrap\n" +
				"phase and has no effect once a handle is launched",
		},
		{
			Name:     "is_dir",
			Sig:      Signature{Ret: RetBool, Args: []Arg{{"path", ArgString}}},
			Proc:     5,
			RetField: "dirflag",
			ShortDesc: "test if a directory exists",
			LongDesc: "This returns C<true> if and only if there is a directory\n" +
				"with the given C<path> name. Note that it returns false for\n" +
				"other objects like files.\n\n" +
				"See also C<guestfs_stat>",
		},
		{
			Name:     "exists",
			Sig:      Signature{Ret: RetBool, Args: []Arg{{"path", ArgString}}},
			Proc:     6,
			Flags:    Flag{NotInShell: true},
			RetField: "existsflag",
			ShortDesc: "test if file or directory exists",
			LongDesc: "This returns C<true> if and only if there is a file,\n" +
				"directory (or anything) with the given C<path> name.\n\n" +
				"This call is not exposed through the shell since C<guestfs_is_file>\n" +
				"and C<guestfs_is_dir> cover the same ground and are easier to script",
		},
		{
			Name:     "blockdev_getsize64",
			Sig:      Signature{Ret: RetInt, Args: []Arg{{"device", ArgString}}},
			Proc:     7,
			RetField: "sizeval",
			ShortDesc: "get total size of device in bytes",
			LongDesc: "This returns the size of the device in bytes.\n\n" +
				"See also C<guestfs_blockdev_getss> for the sector size",
		},
		{
			Name:     "df",
			Sig:      Signature{Ret: RetStringList},
			Proc:     8,
			RetField: "lines",
			ShortDesc: "report file system disk space usage",
			LongDesc: "This command runs the C<df> command to report disk space used",
		},
		{
			Name: "command",
			Sig: Signature{
				Ret: RetString,
				Args: []Arg{
					{"path", ArgString},
					{"background", ArgBool},
					{"stdin", ArgOptString},
				},
			},
			Proc:     9,
			Flags:    Flag{ShellAction: "run_command"},
			RetField: "output",
			ShortDesc: "run a command from the guest filesystem",
			LongDesc: "This call runs a command from the guest filesystem.\n\n" +
				"If C<background> is true the command is started but not waited\n" +
				"for. If C<stdin> is given, its bytes are piped to the command's\n" +
				"standard input; if absent the command's standard input is empty.\n\n" +
				"The command's standard output and error are returned as a single\n" +
				"string; use C<guestfs_sh> for the common case of running a shell\n" +
				"command line through C</bin/sh>",
		},
		{
			Name:     "is_zero",
			Sig:      Signature{Ret: RetIntBool, Args: []Arg{{"device", ArgString}}},
			Proc:     10,
			RetField: "result",
			ShortDesc: "test if a block device is zero-filled, with a confidence level",
			LongDesc: "This returns a pair: whether the device appears to be entirely\n" +
				"zero-filled, and a confidence flag for that determination",
		},
		{
			Name:     "lvm_get_pvs",
			Sig:      Signature{Ret: RetPVList},
			Proc:     11,
			RetField: "pvs",
			ShortDesc: "list the LVM physical volumes (PVs)",
			LongDesc: "List all the physical volumes detected. This is the equivalent\n" +
				"of the L<pvs(8)> command.\n\n" +
				"This returns a list of the physical volumes that were found",
		},
		{
			Name:     "lvm_get_vgs",
			Sig:      Signature{Ret: RetVGList},
			Proc:     12,
			RetField: "vgs",
			ShortDesc: "list the LVM volume groups (VGs)",
			LongDesc: "List all the volumes groups detected. This is the equivalent\n" +
				"of the L<vgs(8)> command",
		},
		{
			Name:     "lvm_get_lvs",
			Sig:      Signature{Ret: RetLVList},
			Proc:     13,
			RetField: "lvs",
			ShortDesc: "list the LVM logical volumes (LVs)",
			LongDesc: "List all the logical volumes detected. This is the equivalent\n" +
				"of the L<lvs(8)> command.\n\n" +
				"See also C<guestfs_lvm_get_pvs>, C<guestfs_lvm_get_vgs>",
		},
		{
			Name: "debug_upload",
			Sig: Signature{
				Ret: RetErr,
				Args: []Arg{
					{"filename", ArgString},
					{"content", ArgString},
					{"mode", ArgInt},
				},
			},
			Proc:      14,
			ShortDesc: "upload a file for internal testing",
			LongDesc:  "This function should not normally be used. It is used by the\n" +
				"internal test suite and may be removed in future",
		},
		{
			Name:      "set_verbose",
			Sig:       Signature{Ret: RetErr, Args: []Arg{{"verbose", ArgBool}}},
			Proc:      15,
			ShortDesc: "set verbose mode",
			LongDesc:  "If C<verbose> is true, this turns on verbose messages",
		},
		{
			Name:      "set_memsize",
			Sig:       Signature{Ret: RetErr, Args: []Arg{{"mb", ArgInt}}},
			Proc:      16,
			ShortDesc: "set memory allocated to the qemu subprocess",
			LongDesc: "This sets the memory size in megabytes allocated to the qemu\n" +
				"subprocess. This only has any effect if called before C<guestfs_launch>",
		},
		{
			Name: "grep_opt",
			Sig: Signature{
				Ret: RetStringList,
				Args: []Arg{
					{"pattern", ArgString},
					{"extra", ArgOptString},
				},
			},
			Proc:     17,
			RetField: "matches",
			ShortDesc: "return lines matching a pattern",
			LongDesc: "This calls the external L<grep(1)> program and returns the\n" +
				"matching lines.\n\n" +
				"If C<extra> is given it is passed as a literal extra argument\n" +
				"to grep; if absent no extra argument is passed",
		},
		{
			Name:     "get_pid",
			Sig:      Signature{Ret: RetInt},
			Proc:     18,
			RetField: "pid",
			ShortDesc: "get PID of qemu subprocess",
			LongDesc:  "Return the process ID of the qemu subprocess. If the subprocess\n" +
				"has not been launched this returns an error",
		},
		{
			Name:     "version_string",
			Sig:      Signature{Ret: RetConstString},
			Proc:     NoProcedure,
			RetField: "str",
			ShortDesc: "return the library version number as a string",
			LongDesc: "Return a string describing the library version. The returned\n" +
				"string is owned by the library and lives for the lifetime of the\n" +
				"handle; callers must not free it",
		},
	}
}
