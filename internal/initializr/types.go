package initializr

// CatalogVersion is one selectable platform version from the service catalog.
type CatalogVersion struct {
	ID      string
	Name    string
	Default bool
}

// Dependency is one selectable starter from the service catalog.
type Dependency struct {
	ID          string
	Name        string
	Description string
	Group       string
	// VersionRange restricts the platform versions the starter supports.
	// Empty means available for every version.
	VersionRange string
}

// Metadata is the decoded dependency/version catalog of one service.
type Metadata struct {
	Versions       []CatalogVersion
	Dependencies   []Dependency
	DefaultVersion string
	DefaultType    string
}

// DependenciesFor returns the catalog entries available for the given
// platform version, honoring each entry's version range.
func (m *Metadata) DependenciesFor(platformVersion string) []Dependency {
	out := make([]Dependency, 0, len(m.Dependencies))
	for _, d := range m.Dependencies {
		if matchesRange(platformVersion, d.VersionRange) {
			out = append(out, d)
		}
	}
	return out
}

// ProjectRequest describes one project to generate, accumulated by the
// wizard and consumed by the download URL builder.
type ProjectRequest struct {
	ServiceURL      string
	Type            string
	Language        string
	GroupID         string
	ArtifactID      string
	Packaging       string
	PlatformVersion string
	Dependencies    []string
}

// metadataDoc mirrors the JSON shape of <service>/metadata/client.
type metadataDoc struct {
	Type struct {
		Default string `json:"default"`
	} `json:"type"`
	BootVersion struct {
		Default string `json:"default"`
		Values  []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"values"`
	} `json:"bootVersion"`
	Dependencies struct {
		Values []struct {
			Name   string `json:"name"`
			Values []struct {
				ID           string `json:"id"`
				Name         string `json:"name"`
				Description  string `json:"description"`
				VersionRange string `json:"versionRange"`
			} `json:"values"`
		} `json:"values"`
	} `json:"dependencies"`
}

func (doc *metadataDoc) toMetadata() *Metadata {
	md := &Metadata{
		DefaultVersion: doc.BootVersion.Default,
		DefaultType:    doc.Type.Default,
	}
	for _, v := range doc.BootVersion.Values {
		md.Versions = append(md.Versions, CatalogVersion{
			ID:      v.ID,
			Name:    v.Name,
			Default: v.ID == doc.BootVersion.Default,
		})
	}
	for _, group := range doc.Dependencies.Values {
		for _, d := range group.Values {
			md.Dependencies = append(md.Dependencies, Dependency{
				ID:           d.ID,
				Name:         d.Name,
				Description:  d.Description,
				Group:        group.Name,
				VersionRange: d.VersionRange,
			})
		}
	}
	SortVersions(md.Versions)
	return md
}
