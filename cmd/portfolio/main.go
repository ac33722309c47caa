package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/Briskwoods/portfolio/internal/commands"
	"github.com/Briskwoods/portfolio/internal/config"
	lambdapkg "github.com/Briskwoods/portfolio/internal/lambda"
)

//go:embed featured_projects.json
var featuredProjectsJSON []byte

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.Load()

	var featured []string
	if err := json.Unmarshal(featuredProjectsJSON, &featured); err != nil {
		log.Fatalf("Error parsing featured projects JSON: %v", err)
	}

	app, err := commands.NewApp(cfg, featured, GitSHA, GitDirty)
	if err != nil {
		log.Fatalf("Error initializing application: %v", err)
	}

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app))
	} else {
		rootCmd := app.NewRootCommand()
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := app.SaveCache(); err != nil {
			log.Fatalf("Error saving cache: %v", err)
		}
	}
}
