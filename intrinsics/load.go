package intrinsics

import (
	"io"
	"os"
	"slices"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v3"
)

// tableFormatVersion is the only table document version understood so
// far. Bump it together with a layout change, never silently.
const tableFormatVersion = 1

// tableFile is the YAML layout of an external table document:
//
//	version: 1
//	entries:
//	  - library: core
//	    member: int.parse
//	    effects: [FormatException]
type tableFile struct {
	Version int              `yaml:"version"`
	Entries []tableFileEntry `yaml:"entries"`
}

type tableFileEntry struct {
	Library string   `yaml:"library"`
	Member  string   `yaml:"member"`
	Effects []string `yaml:"effects"`
}

// Load reads a versioned table document. Duplicated (library, member)
// pairs are allowed, the last entry wins.
func Load(r io.Reader) (Table, error) {
	var file tableFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return Table{}, errors.Wrap(err, "decode table document")
	}

	if file.Version != tableFormatVersion {
		return Table{}, errors.Newf(
			"unsupported table document version %d, only version %d is supported",
			file.Version,
			tableFormatVersion,
		)
	}

	entries := make(map[Key][]string, len(file.Entries))
	for i, e := range file.Entries {
		if e.Library == "" {
			return Table{}, errors.Newf("entry %d: library is required", i)
		}
		if e.Member == "" {
			return Table{}, errors.Newf("entry %d: member is required", i)
		}

		entries[Key{Library: e.Library, Member: e.Member}] = slices.Clone(e.Effects)
	}

	return Table{entries: entries}, nil
}

// LoadFile reads a versioned table document from a file.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.Wrap(err, "open table file")
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return Table{}, errors.Wrapf(err, "load table from %s", path)
	}

	return t, nil
}
