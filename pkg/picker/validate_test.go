package picker

import "testing"

func TestValidateSize(t *testing.T) {
	limits := Limits{MaxSizeBytes: 100, Accept: "*/*"}

	if err := Validate(&File{Name: "ok.png", Size: 100}, limits); err != nil {
		t.Errorf("file at the bound should pass, got %v", err)
	}

	err := Validate(&File{Name: "big.png", Size: 101}, limits)
	if err == nil {
		t.Fatal("oversized file should fail")
	}
	if err.Kind != KindTooLarge {
		t.Errorf("expected TooLarge, got %v", err.Kind)
	}
	if err.File == nil || err.File.Name != "big.png" {
		t.Error("error should carry the offending file")
	}
}

func TestValidateDefaults(t *testing.T) {
	// Zero limits mean 10 MB and image/*.
	f := &File{Name: "photo.png", ContentType: "image/png", Size: DefaultMaxSizeBytes}
	if err := Validate(f, Limits{}); err != nil {
		t.Errorf("expected pass with defaults, got %v", err)
	}

	pdf := &File{Name: "doc.pdf", ContentType: "application/pdf", Size: 10}
	err := Validate(pdf, Limits{})
	if err == nil || err.Kind != KindInvalidType {
		t.Errorf("expected InvalidType for pdf under image/*, got %v", err)
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		contentType string
		filename    string
		want        bool
	}{
		{"exact mime", "image/png", "image/png", "a.png", true},
		{"exact mime case-insensitive", "image/png", "IMAGE/PNG", "a.png", true},
		{"exact mime mismatch", "image/png", "image/jpeg", "a.jpg", false},
		{"wildcard subtype match", "image/*", "image/png", "a.png", true},
		{"wildcard subtype reject", "image/*", "application/pdf", "a.pdf", false},
		{"wildcard subtype no bare prefix", "image/*", "image", "a", false},
		{"universal wildcard", "*/*", "application/zip", "a.zip", true},
		{"extension match", ".png", "application/octet-stream", "photo.png", true},
		{"extension case-insensitive", ".png", "", "photo.PNG", true},
		{"extension reject", ".png", "", "photo.jpg", false},
		{"empty pattern", "", "image/png", "a.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPattern(tt.pattern, tt.contentType, tt.filename); got != tt.want {
				t.Errorf("matchPattern(%q, %q, %q) = %v, want %v",
					tt.pattern, tt.contentType, tt.filename, got, tt.want)
			}
		})
	}
}

func TestMatchesAcceptList(t *testing.T) {
	accept := "image/*, .pdf, application/zip"

	cases := []struct {
		contentType string
		filename    string
		want        bool
	}{
		{"image/webp", "a.webp", true},
		{"application/pdf", "doc.PDF", true},
		{"application/zip", "a.zip", true},
		{"text/plain", "a.txt", false},
	}
	for _, c := range cases {
		if got := matchesAccept(accept, c.contentType, c.filename); got != c.want {
			t.Errorf("matchesAccept(%q, %q) = %v, want %v", c.contentType, c.filename, got, c.want)
		}
	}
}

func TestValidateNoSideEffects(t *testing.T) {
	f := &File{Name: "photo.png", ContentType: "image/png", Size: 10}
	Validate(f, Limits{})
	if f.Name != "photo.png" || f.ContentType != "image/png" || f.Size != 10 {
		t.Error("Validate must not mutate the file")
	}
}
