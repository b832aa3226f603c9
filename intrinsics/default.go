package intrinsics

// Default exits the built-in table of standard operations. Hosts with
// richer standard libraries load their own tables with [Load] and
// layer them over this one via [Table.Merge].
func Default() Table {
	predefined := map[Key][]string{
		// Numeric and text parsing.
		{Library: "core", Member: "int.parse"}:      {"FormatException"},
		{Library: "core", Member: "double.parse"}:   {"FormatException"},
		{Library: "core", Member: "num.parse"}:      {"FormatException"},
		{Library: "core", Member: "BigInt.parse"}:   {"FormatException"},
		{Library: "core", Member: "DateTime.parse"}: {"FormatException"},
		{Library: "core", Member: "Uri.parse"}:      {"FormatException"},

		// First/last/single access on ordered collections.
		{Library: "core", Member: "List.first"}:      {"StateError"},
		{Library: "core", Member: "List.last"}:       {"StateError"},
		{Library: "core", Member: "List.single"}:     {"StateError"},
		{Library: "core", Member: "List.removeLast"}: {"StateError"},
		{Library: "core", Member: "Iterable.first"}:  {"StateError"},
		{Library: "core", Member: "Iterable.last"}:   {"StateError"},
		{Library: "core", Member: "Iterable.single"}: {"StateError"},
		{Library: "core", Member: "Iterable.reduce"}: {"StateError"},

		// Generic decode operations.
		{Library: "convert", Member: "jsonDecode"}:       {"FormatException"},
		{Library: "convert", Member: "JsonCodec.decode"}: {"FormatException"},
		{Library: "convert", Member: "Utf8Codec.decode"}: {"FormatException"},
		{Library: "convert", Member: "base64Decode"}:     {"FormatException"},

		// Range-checked element access.
		{Library: "core", Member: "List.elementAt"}:     {"RangeError"},
		{Library: "core", Member: "Iterable.elementAt"}: {"RangeError"},
		{Library: "core", Member: "String.substring"}:   {"RangeError"},
	}

	return Table{entries: predefined}
}
