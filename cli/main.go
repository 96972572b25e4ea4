package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"ytlens/config"
	"ytlens/storage"
	"ytlens/youtube"
)

func main() {
	// Optional .env in the working directory; real env vars still win.
	godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "analyze":
		cmdAnalyze(args)
	case "history":
		cmdHistory(args)
	case "backup":
		cmdBackup(args)
	case "key":
		cmdKey(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Assume it's an analyze command for convenience
		cmdAnalyze(os.Args[1:])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytlens - YouTube playlist analyzer

Usage:
  ytlens analyze [flags] <playlist-url-or-id>  Analyze a playlist
  ytlens history                               List analyzed playlists
  ytlens backup export <file>                  Export the store to a backup file
  ytlens backup import <file>                  Replace the store from a backup file
  ytlens key set [key]                         Store an API key (reads stdin if omitted)
  ytlens key clear                             Remove the stored API key
  ytlens help                                  Show this help message

Examples:
  ytlens analyze "https://www.youtube.com/playlist?list=PLxxxx"
  ytlens analyze -filter unavailable PLxxxx
  ytlens analyze -force PLxxxx                 # skip the re-analysis prompt
  ytlens backup export playlists-backup.json

For help on specific command: ytlens <command> -h
`)
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	force := fs.Bool("force", false, "Re-analyze without confirmation")
	filter := fs.String("filter", "all", "Which items to list: all, available, or unavailable")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytlens analyze [flags] <playlist-url-or-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing playlist-url-or-id\n")
		fs.Usage()
		os.Exit(1)
	}

	switch *filter {
	case "all", "available", "unavailable":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -filter value %q (use all, available, or unavailable)\n", *filter)
		os.Exit(1)
	}

	playlistID := youtube.ExtractPlaylistID(argv[0])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		if errors.Is(err, config.ErrNoAPIKey) {
			fmt.Fprintf(os.Stderr, "Error: no API key configured. Run: ytlens key set\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error reading API key: %v\n", err)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.CallTimeout)
	defer cancel()

	api, err := youtube.NewDataAPI(ctx, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewJSONStore(cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	manager := youtube.NewAnalysisManager(api, store)
	manager.SetLookupConcurrency(cfg.LookupConcurrency)

	fmt.Fprintf(os.Stderr, "Analyzing playlist %s...\n", playlistID)
	opts := &youtube.AnalyzeOptions{Force: *force}
	result, err := manager.Analyze(ctx, playlistID, opts)
	if errors.Is(err, youtube.ErrConfirmationRequired) {
		if !confirm("This playlist was already analyzed. Refetching will use additional API quota. Continue?") {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return
		}
		opts.Force = true
		result, err = manager.Analyze(ctx, playlistID, opts)
	}
	if err != nil {
		if errors.Is(err, youtube.ErrPlaylistNotFound) {
			fmt.Fprintf(os.Stderr, "Error: playlist %s not found (check the ID and your API key)\n", playlistID)
		} else {
			fmt.Fprintf(os.Stderr, "Error analyzing playlist: %v\n", err)
		}
		os.Exit(1)
	}

	printResult(result, *filter)
}

// confirm asks a yes/no question on the terminal.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func printResult(result *youtube.AnalysisResult, filter string) {
	info := result.Info

	fmt.Printf("Playlist:   %s\n", info.Title)
	fmt.Printf("Channel:    %s\n", info.ChannelTitle)
	fmt.Printf("Declared:   %d items\n", info.VideoCount)
	fmt.Printf("Retrieved:  %d items\n", len(result.Videos))
	if len(result.Videos) < info.VideoCount {
		fmt.Printf("Note:       fetch ended early; %d items missing\n", info.VideoCount-len(result.Videos))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tVIDEO ID\tDURATION\tSTATUS\tTITLE")
	for _, v := range result.Videos {
		if filter == "available" && v.Unavailable {
			continue
		}
		if filter == "unavailable" && !v.Unavailable {
			continue
		}

		status := "available"
		if v.Unavailable {
			status = "unavailable"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", v.Index, v.VideoID, v.Duration, status, truncate(v.Title, 60))
	}
	w.Flush()

	stats := result.Stats
	fmt.Println()
	fmt.Printf("Total videos:      %d\n", stats.TotalVideos)
	fmt.Printf("Available:         %d\n", stats.AvailableVideos)
	fmt.Printf("Unavailable:       %d\n", stats.UnavailableVideos)
	fmt.Printf("Total duration:    %s\n", stats.TotalDuration)
	fmt.Printf("Average duration:  %s\n", stats.AverageDuration)
}

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytlens history\n")
	}
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewJSONStore(cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	playlists, err := store.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading store: %v\n", err)
		os.Exit(1)
	}

	if len(playlists) == 0 {
		fmt.Println("No playlists analyzed yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYLIST ID\tITEMS\tLAST ACCESSED\tTITLE")
	for _, p := range playlists {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			p.ID, p.VideoCount, p.LastAccessed.Format("2006-01-02 15:04"), truncate(p.Title, 50))
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d playlists\n", len(playlists))
}

func cmdBackup(args []string) {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: ytlens backup export|import <file>\n")
		os.Exit(1)
	}

	direction := args[0]
	path := args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewJSONStore(cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	switch direction {
	case "export":
		snapshot, err := storage.ExportBackup(ctx, store, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting backup: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d playlists to %s\n", len(snapshot.Playlists), path)
	case "import":
		if !confirm(fmt.Sprintf("Importing %s replaces the entire store. Continue?", path)) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return
		}
		snapshot, err := storage.ImportBackup(ctx, store, path)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidBackup) {
				fmt.Fprintf(os.Stderr, "Error: %s is not a valid backup file; store left unchanged\n", path)
			} else {
				fmt.Fprintf(os.Stderr, "Error importing backup: %v\n", err)
			}
			os.Exit(1)
		}
		fmt.Printf("Imported %d playlists from %s (created %s)\n",
			len(snapshot.Playlists), path, snapshot.CreatedAt)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backup direction %q (use export or import)\n", direction)
		os.Exit(1)
	}
}

func cmdKey(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: ytlens key set [key] | clear\n")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch args[0] {
	case "set":
		var key string
		if len(args) > 1 {
			key = args[1]
		} else {
			fmt.Fprint(os.Stderr, "API key: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading key: %v\n", err)
				os.Exit(1)
			}
			key = strings.TrimSpace(line)
		}
		if err := config.SaveAPIKey(cfg.KeyPath, key); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving key: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("API key stored at %s (obfuscated, not encrypted)\n", cfg.KeyPath)
	case "clear":
		if err := config.ClearAPIKey(cfg.KeyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing key: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("API key removed.")
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown key action %q (use set or clear)\n", args[0])
		os.Exit(1)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
