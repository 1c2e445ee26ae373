package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"linkpile/internal/config"
	"linkpile/internal/domain"
	"linkpile/internal/repository/sqlite"
	"linkpile/internal/service"
)

func usage() {
	fmt.Fprintf(os.Stderr, `linkpile - a personal read-it-later link tracker

Usage:
  linkpile [flags] add <link> [-comment text] [-tags a,b,c]
  linkpile [flags] read <id>
  linkpile [flags] tags
  linkpile [flags] list [-all] [-archived] [-tag name]

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "config file path (overrides the search order)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, _, err = config.LoadFromPath(*configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	path := cfg.Database.Path
	if *dbPath != "" {
		path = *dbPath
	}

	store, err := sqlite.New(path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	svc := service.NewEntryService(store)
	ctx := context.Background()

	cmd, cmdArgs := args[0], args[1:]
	switch cmd {
	case "add":
		err = runAdd(ctx, svc, cmdArgs)
	case "read":
		err = runRead(ctx, svc, cmdArgs)
	case "tags":
		err = runTags(ctx, svc)
	case "list":
		err = runList(ctx, svc, cfg.List.Limit, cmdArgs)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func runAdd(ctx context.Context, svc *service.EntryService, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	comment := fs.String("comment", "", "a comment on the link for later reference")
	tags := fs.String("tags", "", "comma separated list of tags for the link")
	if err := fs.Parse(args); err != nil {
		return err
	}

	link := fs.Arg(0)
	if link == "" {
		return fmt.Errorf("a link is required")
	}

	id, err := svc.Add(ctx, domain.Entry{
		Link:    link,
		Comment: *comment,
		Tags:    splitTags(*tags),
	})
	if err != nil {
		return err
	}

	fmt.Printf("added %d: %s\n", id, link)
	return nil
}

func runRead(ctx context.Context, svc *service.EntryService, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("an id is required")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	link, err := svc.MarkRead(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("archived %d: %s\n", link.ID, link.Link)
	return nil
}

func runTags(ctx context.Context, svc *service.EntryService) error {
	tags, err := svc.Tags(ctx)
	if err != nil {
		return err
	}

	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

func runList(ctx context.Context, svc *service.EntryService, limit int, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	all := fs.Bool("all", false, "list every link regardless of state")
	archived := fs.Bool("archived", false, "list archived links instead of the queue")
	tag := fs.String("tag", "", "only list links carrying this tag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var links []*domain.Link
	var err error
	switch {
	case *tag != "":
		links, err = svc.ByTag(ctx, *tag)
	case *all:
		links, err = svc.List(ctx, nil)
	default:
		state := domain.StateQueue
		if *archived {
			state = domain.StateArchived
		}
		links, err = svc.List(ctx, &state)
	}
	if err != nil {
		return err
	}

	if limit > 0 && len(links) > limit {
		links = links[:limit]
	}

	for _, link := range links {
		tags, err := svc.TagsForLink(ctx, link.ID)
		if err != nil {
			return err
		}
		printLink(link, tags)
	}
	return nil
}

func printLink(link *domain.Link, tags []string) {
	line := fmt.Sprintf("%4d  [%s]  %s", link.ID, link.Archive, link.Link)
	if link.Comment != "" {
		line += fmt.Sprintf("  - %s", link.Comment)
	}
	if len(tags) > 0 {
		line += fmt.Sprintf("  (%s)", strings.Join(tags, ", "))
	}
	fmt.Println(line)
}

// splitTags turns the -tags value into a tag list, dropping empty segments
// so that trailing or doubled commas don't reach the core as empty tags
func splitTags(s string) []string {
	if s == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
