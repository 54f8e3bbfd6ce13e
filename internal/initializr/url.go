package initializr

import (
	"fmt"
	"net/url"
	"strings"
)

// DownloadURL builds the starter archive URL for req. Parameter names
// match what Initializr services accept and must not be renamed.
func DownloadURL(req ProjectRequest) (string, error) {
	base, err := url.Parse(strings.TrimRight(req.ServiceURL, "/") + "/starter.zip")
	if err != nil {
		return "", fmt.Errorf("parsing service URL %q: %w", req.ServiceURL, err)
	}

	params := url.Values{}
	params.Set("type", req.Type)
	params.Set("language", req.Language)
	params.Set("groupId", req.GroupID)
	params.Set("artifactId", req.ArtifactID)
	params.Set("packaging", req.Packaging)
	params.Set("platformVersion", req.PlatformVersion)
	params.Set("baseDir", req.ArtifactID)
	params.Set("dependencies", strings.Join(req.Dependencies, ","))

	base.RawQuery = params.Encode()
	return base.String(), nil
}
