package novel

import "testing"

func TestDeriveID_Stable(t *testing.T) {
	a := DeriveID("story.txt")
	b := DeriveID("story.txt")
	if a != b {
		t.Errorf("expected identical IDs for same filename, got %q and %q", a, b)
	}
	if a == "" {
		t.Error("expected non-empty ID")
	}
}

func TestDeriveID_CaseAndExtensionInsensitive(t *testing.T) {
	base := DeriveID("story.txt")
	for _, name := range []string{"Story.txt", "STORY.TXT", "story.epub"} {
		if got := DeriveID(name); got != base {
			t.Errorf("DeriveID(%q) = %q, want %q", name, got, base)
		}
	}
}

func TestDeriveID_DistinctNames(t *testing.T) {
	if DeriveID("alpha.txt") == DeriveID("beta.txt") {
		t.Error("expected different IDs for different filenames")
	}
}

func TestDeriveID_CJKFilename(t *testing.T) {
	a := DeriveID("斗破苍穹.txt")
	b := DeriveID("斗破苍穹.txt")
	if a != b || a == "" {
		t.Errorf("expected stable non-empty ID for CJK filename, got %q and %q", a, b)
	}
}
