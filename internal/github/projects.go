package github

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"sort"

	gh "github.com/google/go-github/v68/github"

	"github.com/Briskwoods/portfolio/internal/cache"
)

func init() {
	gob.Register([]Project{})
}

// Project is one repository shown in the portfolio's projects section.
type Project struct {
	Name        string
	Description string
	Language    string
	Stars       int
	HTMLURL     string
}

// ListProjects returns the user's public repositories sorted by star count,
// using the cache. Forks and archived repositories are skipped. When
// featured is non-empty, only repositories named in it are returned.
func ListProjects(ctx context.Context, client Client, c *cache.Cache, user string, featured []string, noCache, debugMode bool) ([]Project, error) {
	cacheKey := fmt.Sprintf("projects:%s", user)
	if !noCache {
		if val, found := c.Get(cacheKey); found {
			if debugMode {
				log.Printf("Cache hit for key: %s", cacheKey)
			}
			if projects, ok := val.([]Project); ok {
				return selectFeatured(projects, featured), nil
			}
		}
		if debugMode {
			log.Printf("Cache miss for key: %s", cacheKey)
		}
	}

	var projects []Project
	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := client.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, err
		}
		for _, repo := range repos {
			if repo.GetFork() || repo.GetArchived() {
				continue
			}
			projects = append(projects, Project{
				Name:        repo.GetName(),
				Description: repo.GetDescription(),
				Language:    repo.GetLanguage(),
				Stars:       repo.GetStargazersCount(),
				HTMLURL:     repo.GetHTMLURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Stars > projects[j].Stars
	})
	if !noCache {
		c.Set(cacheKey, projects)
	}
	return selectFeatured(projects, featured), nil
}

// GetStarCount retrieves the star count for a single repository, using the cache.
func GetStarCount(ctx context.Context, client Client, c *cache.Cache, owner, repo string, noCache, debugMode bool) (int, error) {
	cacheKey := fmt.Sprintf("starCount:%s/%s", owner, repo)
	if !noCache {
		if val, found := c.Get(cacheKey); found {
			if debugMode {
				log.Printf("Cache hit for key: %s", cacheKey)
			}
			if stars, ok := val.(int); ok {
				return stars, nil
			}
		}
		if debugMode {
			log.Printf("Cache miss for key: %s", cacheKey)
		}
	}

	repository, _, err := client.GetRepository(ctx, owner, repo)
	if err != nil {
		return 0, err
	}
	starCount := repository.GetStargazersCount()
	if !noCache {
		c.Set(cacheKey, starCount)
	}
	return starCount, nil
}

func selectFeatured(projects []Project, featured []string) []Project {
	if len(featured) == 0 {
		return projects
	}
	want := make(map[string]bool, len(featured))
	for _, name := range featured {
		want[name] = true
	}
	var picked []Project
	for _, p := range projects {
		if want[p.Name] {
			picked = append(picked, p)
		}
	}
	return picked
}
