package section

import (
	"strings"
	"testing"
)

const sampleDoc = `~VERSION INFORMATION
 VERS.   2.0 : CWLS log ASCII Standard
 WRAP.   NO  : One line per depth step
~Well Information
 STRT.M  1670.0 : START DEPTH
 NULL.  -999.25 : NULL VALUE
~C INFORMATION
# comment inside curve section
 DEPT.M : Depth
 GR.API : Gamma Ray
~A  Log Data
 1670.0  42.5
 1670.5  43.1
`

func TestSplit_MarkerVariants(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"long label", Version, " VERS.   2.0 : CWLS log ASCII Standard\n WRAP.   NO  : One line per depth step\n"},
		{"mixed case", Well, " STRT.M  1670.0 : START DEPTH\n NULL.  -999.25 : NULL VALUE\n"},
		{"letter plus label", Curve, "# comment inside curve section\n DEPT.M : Depth\n GR.API : Gamma Ray\n"},
		{"data runs to EOF", Data, " 1670.0  42.5\n 1670.5  43.1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := Split(sampleDoc, tt.kind)
			if !ok {
				t.Fatalf("Split(%v) reported absent", tt.kind)
			}
			if body != tt.want {
				t.Errorf("Split(%v) = %q, want %q", tt.kind, body, tt.want)
			}
		})
	}
}

func TestSplit_AbsentSection(t *testing.T) {
	if _, ok := Split(sampleDoc, Parameter); ok {
		t.Error("Split(Parameter) should report absent")
	}
	if _, ok := Split(sampleDoc, Other); ok {
		t.Error("Split(Other) should report absent")
	}
}

func TestSplit_CaseInsensitive(t *testing.T) {
	doc := "~v\n VERS. 2.0 : fmt\n~w\n NULL. -999.25 : null\n"

	body, ok := Split(doc, Version)
	if !ok {
		t.Fatal("lowercase ~v marker not found")
	}
	if !strings.Contains(body, "VERS.") {
		t.Errorf("version body = %q", body)
	}
}

func TestSplit_MarkerOnLastLine(t *testing.T) {
	body, ok := Split("~V\n VERS. 2.0 : fmt\n~A", Data)
	if !ok {
		t.Fatal("trailing ~A marker not found")
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestSplit_UnknownKind(t *testing.T) {
	if _, ok := Split(sampleDoc, Kind('X')); ok {
		t.Error("unknown kind should report absent")
	}
}

func TestContains(t *testing.T) {
	if !Contains(sampleDoc, Curve) {
		t.Error("Contains(Curve) = false")
	}
	if Contains(sampleDoc, Parameter) {
		t.Error("Contains(Parameter) = true")
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only comments", "# a\n  # b", ""},
		{"mixed", "  # header comment\n DEPT.M : Depth\n# trailing\n GR.API : Gamma", "DEPT.M : Depth\nGR.API : Gamma"},
		{"order preserved", "b\na\n# x\nc", "b\na\nc"},
		{"hash mid-line kept", "DEPT.M : Depth # not a comment", "DEPT.M : Depth # not a comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.input); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Version: "version", Well: "well", Curve: "curve", Parameter: "parameter", Other: "other", Data: "data", Kind('Z'): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%c).String() = %q, want %q", byte(k), got, want)
		}
	}
}
