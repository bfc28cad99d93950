package latin1

import "testing"

func TestDecode(t *testing.T) {
	got, err := Decode("caf\xe9")
	if err != nil {
		t.Fatal(err)
	}
	if got != "café" {
		t.Errorf("Decode = %q, want %q", got, "café")
	}
}

func TestTextOffsets(t *testing.T) {
	// "a\xe9b\xffc": a(1) é(2) b(1) ÿ(2) c(1)
	txt, err := NewText("a\xe9b\xffc")
	if err != nil {
		t.Fatal(err)
	}
	if txt.UTF8 != "aébÿc" {
		t.Fatalf("UTF8 = %q", txt.UTF8)
	}

	tests := []struct {
		latin, utf8 int
	}{
		{0, 0}, {1, 1}, {2, 3}, {3, 4}, {4, 6}, {5, 7},
	}
	for _, tt := range tests {
		if got := txt.ToUTF8(tt.latin); got != tt.utf8 {
			t.Errorf("ToUTF8(%d) = %d, want %d", tt.latin, got, tt.utf8)
		}
		if got := txt.ToLatin1(tt.utf8); got != tt.latin {
			t.Errorf("ToLatin1(%d) = %d, want %d", tt.utf8, got, tt.latin)
		}
	}

	// Offset 2 sits inside é.
	if got := txt.ToLatin1(2); got != 1 {
		t.Errorf("ToLatin1(2) = %d, want 1", got)
	}
}

func TestEmptyText(t *testing.T) {
	txt, err := NewText("")
	if err != nil {
		t.Fatal(err)
	}
	if txt.ToUTF8(0) != 0 || txt.ToLatin1(0) != 0 {
		t.Error("empty text must map 0 to 0")
	}
}
