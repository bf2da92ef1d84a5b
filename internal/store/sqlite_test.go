package store

import (
	"path/filepath"
	"testing"

	"github.com/devhire/devhire/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSavedJobs_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	ids, err := s.SavedJobs()
	if err != nil {
		t.Fatalf("SavedJobs: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("fresh store should have no saved jobs, got %v", ids)
	}

	for _, id := range []string{"jsearch_1", "reed_2", "remoteok_3"} {
		if err := s.SaveJob(id); err != nil {
			t.Fatalf("SaveJob(%s): %v", id, err)
		}
	}

	ids, err = s.SavedJobs()
	if err != nil {
		t.Fatalf("SavedJobs: %v", err)
	}
	if len(ids) != 3 || ids[0] != "jsearch_1" || ids[2] != "remoteok_3" {
		t.Fatalf("expected insertion order preserved, got %v", ids)
	}

	if err := s.UnsaveJob("reed_2"); err != nil {
		t.Fatalf("UnsaveJob: %v", err)
	}
	ids, _ = s.SavedJobs()
	if len(ids) != 2 || ids[0] != "jsearch_1" || ids[1] != "remoteok_3" {
		t.Fatalf("after unsave: %v", ids)
	}
}

func TestSaveJob_Idempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.SaveJob("jsearch_1"); err != nil {
			t.Fatalf("SaveJob: %v", err)
		}
	}
	ids, err := s.SavedJobs()
	if err != nil {
		t.Fatalf("SavedJobs: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("repeated saves must not duplicate, got %v", ids)
	}
}

func TestUnsaveJob_MissingIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.UnsaveJob("never_saved"); err != nil {
		t.Fatalf("UnsaveJob on missing id: %v", err)
	}
}

func TestLikedJobs_IndependentOfSaved(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveJob("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.LikeJob("b"); err != nil {
		t.Fatal(err)
	}

	saved, _ := s.SavedJobs()
	liked, _ := s.LikedJobs()
	if len(saved) != 1 || saved[0] != "a" {
		t.Errorf("saved = %v", saved)
	}
	if len(liked) != 1 || liked[0] != "b" {
		t.Errorf("liked = %v", liked)
	}

	if err := s.UnlikeJob("b"); err != nil {
		t.Fatal(err)
	}
	liked, _ = s.LikedJobs()
	if len(liked) != 0 {
		t.Errorf("liked after unlike = %v", liked)
	}
}

func TestFilter_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	f, err := s.Filter()
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(f.Locations) != 0 || f.SalaryMin != 0 {
		t.Fatalf("fresh store should return the zero filter, got %+v", f)
	}

	want := model.Filter{
		Locations:    []string{"Berlin", "Remote"},
		Remote:       true,
		Types:        []model.JobType{model.FullTime, model.Contract},
		TechStack:    []string{"Go"},
		SalaryMin:    80000,
		NoWhiteboard: true,
	}
	if err := s.SetFilter(want); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	got, err := s.Filter()
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if got.SalaryMin != want.SalaryMin || !got.Remote || !got.NoWhiteboard {
		t.Errorf("filter round trip lost fields: %+v", got)
	}
	if len(got.Locations) != 2 || got.Locations[0] != "Berlin" {
		t.Errorf("Locations = %v", got.Locations)
	}
	if len(got.Types) != 2 || got.Types[1] != model.Contract {
		t.Errorf("Types = %v", got.Types)
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	u, err := s.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if u != nil {
		t.Fatalf("fresh store should have no profile, got %+v", u)
	}

	want := model.User{
		Name:       "Dana",
		Email:      "dana@example.com",
		Skills:     []string{"Go", "React"},
		Location:   "Berlin",
		RemoteOnly: true,
	}
	if err := s.SetProfile(want); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}

	u, err = s.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if u == nil || u.Name != "Dana" || !u.RemoteOnly || len(u.Skills) != 2 {
		t.Errorf("profile round trip: %+v", u)
	}
}

func TestTheme_DefaultsToDark(t *testing.T) {
	s := newTestStore(t)

	mode, err := s.Theme()
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if mode != "dark" {
		t.Errorf("default theme = %q, want dark", mode)
	}

	if err := s.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	mode, _ = s.Theme()
	if mode != "light" {
		t.Errorf("theme = %q after SetTheme", mode)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := s.SaveJob("jsearch_42"); err != nil {
		t.Fatalf("SaveJob: %v", err)
	}
	if err := s.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	s.Close()

	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s2.Close()

	ids, err := s2.SavedJobs()
	if err != nil {
		t.Fatalf("SavedJobs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "jsearch_42" {
		t.Errorf("saved jobs did not survive reopen: %v", ids)
	}
	mode, _ := s2.Theme()
	if mode != "light" {
		t.Errorf("theme did not survive reopen: %q", mode)
	}
}
