package intrinsics

import (
	"bytes"
	"embed"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
)

//go:embed testdata
var tableFixtures embed.FS

func TestLoad(t *testing.T) {
	open := func(t *testing.T, name string) *bytes.Reader {
		data, err := tableFixtures.ReadFile("testdata/" + name)
		if err != nil {
			t.Fatalf("read fixture %s: %v", name, err)
		}
		return bytes.NewReader(data)
	}

	t.Run("valid document", func(t *testing.T) {
		table, err := Load(open(t, "table_v1.yaml"))
		if err != nil {
			t.Fatal(err)
		}

		if table.Len() != 3 {
			t.Fatalf("3 entries were expected, got %d", table.Len())
		}

		effects, ok := table.Lookup("cache", "Store.get")
		if !ok {
			t.Fatal(`"cache".Store.get entry was expected`)
		}
		if want := []string{"CacheMiss", "StorageFailure"}; !reflect.DeepEqual(want, effects) {
			deepequal.SideBySide(t, "effects", want, effects)
		}

		// An empty effects list is still a present entry.
		effects, ok = table.Lookup("core", "List.first")
		if !ok {
			t.Fatal(`"core".List.first entry was expected`)
		}
		if len(effects) != 0 {
			t.Fatalf("no effects were expected, got %v", effects)
		}

		if _, ok := table.Lookup("core", "double.parse"); ok {
			t.Fatal(`no "core".double.parse entry was expected`)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := Load(open(t, "table_v9.yaml"))
		if err == nil {
			t.Fatal("version error was expected")
		}
		t.Log(err)
	})

	t.Run("broken yaml types", func(t *testing.T) {
		_, err := Load(open(t, "table_broken.yaml"))
		if err == nil {
			t.Fatal("decode error was expected")
		}
		t.Log(err)
	})

	t.Run("member is required", func(t *testing.T) {
		_, err := Load(open(t, "table_incomplete.yaml"))
		if err == nil {
			t.Fatal("incomplete entry error was expected")
		}
		t.Log(err)
	})
}

func TestMerge(t *testing.T) {
	base := New(map[Key][]string{
		{Library: "core", Member: "int.parse"}:  {"FormatException"},
		{Library: "core", Member: "List.first"}: {"StateError"},
	})
	override := New(map[Key][]string{
		{Library: "core", Member: "int.parse"}:  {"ParseFailure"},
		{Library: "cache", Member: "Store.get"}: {"CacheMiss"},
	})

	merged := base.Merge(override)

	if merged.Len() != 3 {
		t.Fatalf("3 entries were expected after merge, got %d", merged.Len())
	}

	effects, _ := merged.Lookup("core", "int.parse")
	if want := []string{"ParseFailure"}; !reflect.DeepEqual(want, effects) {
		deepequal.SideBySide(t, "overridden entry", want, effects)
	}

	effects, _ = merged.Lookup("core", "List.first")
	if want := []string{"StateError"}; !reflect.DeepEqual(want, effects) {
		deepequal.SideBySide(t, "kept entry", want, effects)
	}

	// Sources must stay intact.
	effects, _ = base.Lookup("core", "int.parse")
	if want := []string{"FormatException"}; !reflect.DeepEqual(want, effects) {
		deepequal.SideBySide(t, "base entry after merge", want, effects)
	}
}

func TestDefault(t *testing.T) {
	table := Default()

	for _, probe := range []struct {
		library string
		member  string
		effect  string
	}{
		{"core", "int.parse", "FormatException"},
		{"core", "List.first", "StateError"},
		{"convert", "jsonDecode", "FormatException"},
		{"core", "List.elementAt", "RangeError"},
	} {
		effects, ok := table.Lookup(probe.library, probe.member)
		if !ok {
			t.Fatalf("%q.%s entry was expected in the default table", probe.library, probe.member)
		}
		if want := []string{probe.effect}; !reflect.DeepEqual(want, effects) {
			deepequal.SideBySide(t, probe.member, want, effects)
		}
	}
}
