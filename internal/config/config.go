package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Defaults used when the corresponding environment variable is unset or empty.
const (
	DefaultUsername = "Briskwoods"
	DefaultRepo     = "code-snippets"
	DefaultBranch   = "main"
	DefaultFolder   = "snippets"
	DefaultAddr     = ":8080"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	// Snippet source repository.
	Username string
	Repo     string
	Branch   string
	Folder   string

	Addr          string
	GitHubToken   string
	SessionSecret string
	CacheFile     string
	NoCache       bool
	DebugMode     bool

	// S3 destination for the lambda export.
	S3Bucket    string
	S3ObjectKey string
}

// Load reads configuration from the environment. It never fails: every
// missing field falls back to its default. Callers read it fresh for each
// snippet load rather than holding a stale copy.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LISTEN_ADDR", DefaultAddr)
	v.SetDefault("CACHE_FILE", "/tmp/portfolio-cache.gob")

	return Config{
		Username:      nonEmpty(v.GetString("SNIPPET_USER"), DefaultUsername),
		Repo:          nonEmpty(v.GetString("SNIPPET_REPO"), DefaultRepo),
		Branch:        nonEmpty(v.GetString("SNIPPET_BRANCH"), DefaultBranch),
		Folder:        nonEmpty(v.GetString("SNIPPET_FOLDER"), DefaultFolder),
		Addr:          v.GetString("LISTEN_ADDR"),
		GitHubToken:   v.GetString("GITHUB_TOKEN"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		CacheFile:     v.GetString("CACHE_FILE"),
		DebugMode:     truthy(v.GetString("DEBUG")),
		S3Bucket:      v.GetString("S3_BUCKET_NAME"),
		S3ObjectKey:   v.GetString("S3_OBJECT_KEY"),
	}
}

func nonEmpty(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}

func truthy(val string) bool {
	return val != "" && val != "0" && strings.ToLower(val) != "false"
}
