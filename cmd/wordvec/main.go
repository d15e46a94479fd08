package main

import (
	"fmt"
	"log"
	"os"

	"github.com/viant/wordvec/internal/config"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `wordvec - word-vector geometry toolkit

USAGE:
    wordvec [-config path] <command> [options]

COMMANDS:
    neighbors   Find the nearest neighbors of a word
    analogy     Solve a:b :: c:? via vector offset
    outlier     Find the least central word in a group
    cache       Parse embeddings and cache the store into SQLite

Run 'wordvec <command> -h' for command options.
`)
}

func main() {
	args := os.Args[1:]

	configPath := ""
	if len(args) >= 2 && args[0] == "-config" {
		configPath = args[1]
		args = args[2:]
	}
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "neighbors":
		handleNeighbors(cfg, rest)
	case "analogy":
		handleAnalogy(cfg, rest)
	case "outlier":
		handleOutlier(cfg, rest)
	case "cache":
		handleCache(cfg, rest)
	case "-h", "-help", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}
