package yamlfile

// CatalogFile is the root structure of a catalog file.
//
//	hooks:
//	  - id: git-commit-guardian
//	    name: Git Commit Guardian
//	    category: Security
//	    hookTypes: [PreToolUse]
//	    ...
type CatalogFile struct {
	Hooks []HookEntry `yaml:"hooks"`
}

// HookEntry mirrors one catalog entry as written in YAML.
// GitHubStars is a pointer so that a missing key and 0 stay distinct.
type HookEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	RepoURL     string   `yaml:"repoUrl"`
	Author      string   `yaml:"author"`
	GitHubStars *int     `yaml:"githubStars,omitempty"`
	HookTypes   []string `yaml:"hookTypes"`
	Tags        []string `yaml:"tags,omitempty"`
}
