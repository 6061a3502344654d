package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleTemplate = `// Branding for the iOS app
// Generated by brandkit

BRAND_ID = intrale
BUNDLE_ID_SUFFIX =
BRAND_NAME = Intrale Shop
  DISPLAY_NAME=Intrale
SWIFT_VERSION = 5.0
this line is not an assignment
`

func TestParseTemplate(t *testing.T) {
	tmpl := ParseTemplate(sampleTemplate)

	if len(tmpl.Entries) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(tmpl.Entries))
	}

	wantKinds := []EntryKind{EntryRaw, EntryRaw, EntryRaw, EntrySetting, EntrySetting, EntrySetting, EntrySetting, EntryRaw, EntryRaw}
	for i, e := range tmpl.Entries {
		if e.Kind != wantKinds[i] {
			t.Fatalf("entry %d: expected kind %d, got %d (%q)", i, wantKinds[i], e.Kind, e.Line)
		}
	}

	if tmpl.Entries[0].Line != "// Branding for the iOS app\n" {
		t.Fatalf("raw line must keep its terminator, got %q", tmpl.Entries[0].Line)
	}

	wantDefaults := Values{
		KeyBrandID:        "intrale",
		KeyBundleIDSuffix: "",
		KeyBrandName:      "Intrale Shop",
		KeyDisplayName:    "Intrale",
	}
	if diff := cmp.Diff(wantDefaults, tmpl.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTemplateDuplicateKey(t *testing.T) {
	tmpl := ParseTemplate("BRAND_NAME = First\n// between\nBRAND_NAME = Second\n")

	if tmpl.Defaults[KeyBrandName] != "Second" {
		t.Fatalf("expected later default to win, got %q", tmpl.Defaults[KeyBrandName])
	}

	settings := 0
	for _, e := range tmpl.Entries {
		if e.Kind == EntrySetting {
			settings++
		}
	}
	if settings != 2 {
		t.Fatalf("expected both occurrences to stay settings, got %d", settings)
	}

	out := Render(tmpl, Values{KeyBrandName: "Resolved"})
	want := "BRAND_NAME = Resolved\n// between\nBRAND_NAME = Resolved\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTemplateEmptyAndUnterminated(t *testing.T) {
	if tmpl := ParseTemplate(""); len(tmpl.Entries) != 0 {
		t.Fatalf("expected no entries for empty text")
	}

	tmpl := ParseTemplate("// header\r\nBRAND_ID = x")
	if len(tmpl.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tmpl.Entries))
	}
	if tmpl.Entries[0].Line != "// header\r\n" {
		t.Fatalf("CRLF terminator must be preserved, got %q", tmpl.Entries[0].Line)
	}
	if tmpl.Defaults[KeyBrandID] != "x" {
		t.Fatalf("expected default x, got %q", tmpl.Defaults[KeyBrandID])
	}
}

func TestRenderPreservesRawLines(t *testing.T) {
	tmpl := ParseTemplate(sampleTemplate)
	resolved := Values{
		KeyBrandID:                 "acme",
		KeyBundleIDSuffix:          "com.acme",
		KeyBrandName:               "Acme Store",
		KeyDeeplinkHost:            "acme.example.com",
		KeyBrandingEndpoint:        "https://api.example.com",
		KeyBrandingPreviewVersion:  "",
		KeyProductBundleIdentifier: "",
		KeyDisplayName:             "Acme",
	}

	got := Render(tmpl, resolved)
	want := `// Branding for the iOS app
// Generated by brandkit

BRAND_ID = acme
BUNDLE_ID_SUFFIX = com.acme
BRAND_NAME = "Acme Store"
DISPLAY_NAME = Acme
SWIFT_VERSION = 5.0
this line is not an assignment
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFallsBackToDefaults(t *testing.T) {
	tmpl := ParseTemplate("DISPLAY_NAME = My App\n")
	if got := Render(tmpl, Values{}); got != "DISPLAY_NAME = \"My App\"\n" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"Hello World", `"Hello World"`},
		{"a#b", `"a#b"`},
		{`say"hi`, `say\"hi`},
		{`say "hi"`, `"say \"hi\""`},
		{"tab\there", "\"tab\there\""},
		{"https://api.example.com/v1", "https://api.example.com/v1"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in); got != c.want {
			t.Errorf("FormatValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
