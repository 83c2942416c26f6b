package githook

// pushEvent is the subset of a GitHub push payload the ingress reads.
type pushEvent struct {
	Ref        string `json:"ref"`
	Repository struct {
		Name    string `json:"name"`
		HTMLURL string `json:"html_url"`
	} `json:"repository"`
	Commits []pushCommit `json:"commits"`
}

type pushCommit struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Message string `json:"message"`
	Author  struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"author"`
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Removed  []string `json:"removed"`
}

// filePath picks the most representative file for the change log: the
// first added file, else the first modified, else the first removed,
// falling back to the repository name.
func (c pushCommit) filePath(repoName string) string {
	if len(c.Added) > 0 {
		return c.Added[0]
	}
	if len(c.Modified) > 0 {
		return c.Modified[0]
	}
	if len(c.Removed) > 0 {
		return c.Removed[0]
	}
	return repoName
}
