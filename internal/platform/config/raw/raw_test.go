package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " foodproxy ")
	t.Setenv("LOG_BLANK", "   ")

	log := New().Prefix("LOG_")
	tests := []struct {
		name, key, def, want string
	}{
		{"prefixed hit", "SERVICE", "x", "foodproxy"},
		{"blank uses default", "BLANK", "d", "d"},
		{"missing uses default", "MISSING", "defv", "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := log.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("RB_")
	tests := []struct {
		env       string
		def, want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{" YES ", false, true},
		{"false", true, false},
		{"0", true, false},
		{"garbage", true, false},
		{"", true, true},
	}
	for _, tt := range tests {
		t.Setenv("RB_V", tt.env)
		if got := c.GetBool("V", tt.def); got != tt.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tt.env, tt.def, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("RI_")
	tests := []struct {
		env       string
		def, want int
	}{
		{"", 4, 4},
		{" 12 ", 0, 12},
		{"-3", 7, 7},
		{"1e3", 7, 7},
		{"abc", 1, 1},
	}
	for _, tt := range tests {
		t.Setenv("RI_V", tt.env)
		if got := c.GetInt("V", tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.env, got, tt.want)
		}
	}
}
