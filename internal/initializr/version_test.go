package initializr

import "testing"

func TestSortVersions(t *testing.T) {
	versions := []CatalogVersion{
		{ID: "2.7.18"},
		{ID: "3.3.2"},
		{ID: "3.0.0-M1"},
		{ID: "2.7.0.RELEASE"},
	}
	SortVersions(versions)

	want := []string{"3.3.2", "3.0.0-M1", "2.7.18", "2.7.0.RELEASE"}
	for i, id := range want {
		if versions[i].ID != id {
			t.Errorf("versions[%d] = %q, want %q", i, versions[i].ID, id)
		}
	}
}

func TestSortVersionsKeepsUnparsableLast(t *testing.T) {
	versions := []CatalogVersion{
		{ID: "weird"},
		{ID: "1.0.0"},
	}
	SortVersions(versions)
	if versions[0].ID != "1.0.0" || versions[1].ID != "weird" {
		t.Errorf("got order %q, %q", versions[0].ID, versions[1].ID)
	}
}

func TestMatchesRange(t *testing.T) {
	tests := []struct {
		version string
		rng     string
		want    bool
	}{
		{"2.7.0", "", true},
		{"2.7.0", "2.0.0", true},
		{"1.9.0", "2.0.0", false},
		{"2.5.0", "[2.0.0,3.0.0)", true},
		{"3.0.0", "[2.0.0,3.0.0)", false},
		{"3.0.0", "[2.0.0,3.0.0]", true},
		{"2.0.0", "(2.0.0,3.0.0)", false},
		{"2.7.0.RELEASE", "[2.0.0.RELEASE,3.0.0)", true},
		{"2.7.0", "[2.0.0,)", true},
		{"not-a-version", "[2.0.0,3.0.0)", true},
	}
	for _, tt := range tests {
		if got := matchesRange(tt.version, tt.rng); got != tt.want {
			t.Errorf("matchesRange(%q, %q) = %v, want %v", tt.version, tt.rng, got, tt.want)
		}
	}
}

func TestDependenciesFor(t *testing.T) {
	md := &Metadata{
		Dependencies: []Dependency{
			{ID: "web"},
			{ID: "old-starter", VersionRange: "[1.0.0,2.0.0)"},
			{ID: "new-starter", VersionRange: "3.0.0"},
		},
	}

	got := md.DependenciesFor("3.3.2")
	ids := make([]string, len(got))
	for i, d := range got {
		ids[i] = d.ID
	}
	if len(ids) != 2 || ids[0] != "web" || ids[1] != "new-starter" {
		t.Errorf("DependenciesFor(3.3.2) = %v, want [web new-starter]", ids)
	}
}
