package filesystem

import "testing"

func TestIsJunk(t *testing.T) {
	testCases := []struct {
		name string
		junk bool
	}{
		{".DS_Store", true},
		{"Thumbs.db", true},
		{"ehthumbs.db", true},
		{"desktop.ini", true},
		{"Desktop.ini", true},
		{"._resource", true},
		{".file.swp", true},
		{"notes.txt~", true},
		{"npm-debug.log", true},
		{"__MACOSX", true},
		{"index.js", false},
		{"README.md", false},
		{".gitignore", false},
		{"thumbs.db.bak", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsJunk(tc.name); got != tc.junk {
				t.Errorf("IsJunk(%q) = %v, want %v", tc.name, got, tc.junk)
			}
		})
	}
}
