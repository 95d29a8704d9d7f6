package models

import (
	"testing"
	"time"
)

func TestAnnouncementVisibleTo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	mentor := "Mentor"

	tests := []struct {
		name string
		a    Announcement
		role string
		want bool
	}{
		{"untargeted unexpired", Announcement{}, "Mentee", true},
		{"matching role", Announcement{TargetRole: &mentor}, "Mentor", true},
		{"matching role case-insensitive", Announcement{TargetRole: &mentor}, "mentor", true},
		{"other role", Announcement{TargetRole: &mentor}, "Mentee", false},
		{"admin sees any target", Announcement{TargetRole: &mentor}, "Admin", true},
		{"expired for everyone", Announcement{ExpiryDate: &past}, "Mentee", false},
		{"expired even for admin", Announcement{TargetRole: &mentor, ExpiryDate: &past}, "Admin", false},
		{"unexpired with future date", Announcement{ExpiryDate: &future}, "Mentee", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.VisibleTo(tt.role, now); got != tt.want {
				t.Errorf("VisibleTo(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestUserSubjects(t *testing.T) {
	u := User{Skills: "Go, SQL , Docker"}
	got := u.Subjects()
	want := []string{"Go", "SQL", "Docker"}
	if len(got) != len(want) {
		t.Fatalf("Subjects() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Subjects()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	empty := User{Skills: "  "}
	if s := empty.Subjects(); len(s) != 0 {
		t.Errorf("Subjects() on blank skills = %v, want empty", s)
	}
}
