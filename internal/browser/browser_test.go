package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=abc123", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Open(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Open(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			// Headless test hosts may lack an opener binary. Scheme
			// validation is what matters here, the launch itself can
			// fail.
			_ = err
		}
	}
}

func TestOpenCommandPerOS(t *testing.T) {
	const u = "https://www.youtube.com/watch?v=abc"

	name, args := openCommand("darwin", u)
	if name != "open" || len(args) != 1 {
		t.Errorf("darwin: got %s %v", name, args)
	}

	name, args = openCommand("windows", u)
	if name != "rundll32" || len(args) != 2 {
		t.Errorf("windows: got %s %v", name, args)
	}

	name, _ = openCommand("linux", u)
	if name != "xdg-open" {
		t.Errorf("linux: got %s", name)
	}
}
