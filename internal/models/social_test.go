package models

import "testing"

func TestFriend_DisplayName(t *testing.T) {
	cases := []struct {
		name   string
		friend Friend
		want   string
	}{
		{"first and last", Friend{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, "Ada Lovelace"},
		{"first only", Friend{FirstName: "Ada"}, "Ada"},
		{"last only", Friend{LastName: "Lovelace"}, "Lovelace"},
		{"username fallback", Friend{Username: "ada"}, "@ada"},
		{"nothing", Friend{ID: "u1"}, "User"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.friend.DisplayName(); got != tc.want {
				t.Errorf("DisplayName = %q, want %q", got, tc.want)
			}
		})
	}
}
