package eir

import "testing"

func TestRefTextRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Ref
		wantErr bool
	}{
		{
			name: "free routine",
			text: `"core".parse`,
			want: Ref{Lib: "core", Name: "parse"},
		},
		{
			name: "type member",
			text: `"core".List.first`,
			want: Ref{Lib: "core", Owner: "List", Name: "first"},
		},
		{
			name: "slashed library path",
			text: `"example.project/cache".Store.get`,
			want: Ref{Lib: "example.project/cache", Owner: "Store", Name: "get"},
		},
		{
			name:    "empty",
			text:    "",
			wantErr: true,
		},
		{
			name:    "no quotes",
			text:    `core.parse`,
			wantErr: true,
		},
		{
			name:    "unterminated library",
			text:    `"core.parse`,
			wantErr: true,
		},
		{
			name:    "missing name",
			text:    `"core"`,
			wantErr: true,
		},
		{
			name:    "too many identifiers",
			text:    `"core".List.first.extra`,
			wantErr: true,
		},
		{
			name:    "bad identifier",
			text:    `"core".1st`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Ref
			err := got.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("error was expected for %q, got %v", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.text, err)
			}
			if got != tt.want {
				t.Fatalf("parsed %v, want %v", got, tt.want)
			}

			back := got.String()
			if back != tt.text {
				t.Fatalf("round trip gave %q, want %q", back, tt.text)
			}
		})
	}
}

func TestRefMember(t *testing.T) {
	if m := (Ref{Lib: "core", Name: "parse"}).Member(); m != "parse" {
		t.Fatalf("free routine member %q, want %q", m, "parse")
	}
	if m := (Ref{Lib: "core", Owner: "List", Name: "first"}).Member(); m != "List.first" {
		t.Fatalf("type member %q, want %q", m, "List.first")
	}
}
