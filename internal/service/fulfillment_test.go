package service

import "testing"

func TestGiveCommand(t *testing.T) {
	got := GiveCommand("Steve", "VIP Paketi")
	want := "give Steve vip_paketi 1"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Diamond Sword", "diamond_sword"},
		{"  Zombie   Spawner  ", "zombie_spawner"},
		{"x16 Elytra!", "x16_elytra"},
		{"VIP+", "vip"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Fatalf("slugify(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
