package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cogmemai/cogmem-go/pkg/cogmem"
	"github.com/cogmemai/cogmem-go/pkg/document"
	"github.com/gobwas/glob"
)

func cmdIngest(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("ingest", flag.ExitOnError)
	var common commonFlags
	common.register(flags)
	docType := flags.String("type", "", `Document type hint, e.g. "README", "meeting notes"`)
	project := flags.String("project", "", "Project identifier")
	pattern := flags.String("glob", "", `File pattern relative to the current directory, e.g. "docs/**/*.md"`)
	chunkTokens := flags.Int("chunk-tokens", 0, "Token budget per ingest request (default 8000)")
	flags.Parse(args)

	files := flags.Args()
	if *pattern != "" {
		matched, err := matchFiles(*pattern)
		if err != nil {
			return err
		}
		files = append(files, matched...)
	}
	if len(files) == 0 {
		return fmt.Errorf("ingest: no files given (pass paths or -glob)")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	chunker := document.NewChunker(tokenCounter(), *chunkTokens)
	opts := &cogmem.IngestOptions{
		DocumentType: *docType,
		ProjectID:    common.projectID(*project),
	}

	totalExtracted := 0
	for _, file := range files {
		extracted, err := ingestFile(ctx, client, chunker, file, opts)
		if err != nil {
			return err
		}
		totalExtracted += extracted
	}

	fmt.Printf("ingested %d file(s), %d memories extracted\n", len(files), totalExtracted)
	return nil
}

// ingestFile extracts text from one file, splits it into token-budgeted
// chunks, and ingests each chunk. Returns the number of memories the service
// reported extracting.
func ingestFile(ctx context.Context, client *cogmem.Client, chunker *document.Chunker, path string, opts *cogmem.IngestOptions) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("ingest: failed to read %s: %w", path, err)
	}

	text, err := document.ExtractText(path, content)
	if err != nil {
		return 0, fmt.Errorf("ingest: %s: %w", path, err)
	}

	chunks := chunker.Split(text)
	if len(chunks) == 0 {
		fmt.Fprintf(os.Stderr, "ingest: skipping empty file %s\n", path)
		return 0, nil
	}

	extracted := 0
	for i, chunk := range chunks {
		result, err := client.IngestDocument(ctx, chunk, opts)
		if err != nil {
			return extracted, fmt.Errorf("ingest: %s chunk %d/%d: %w", path, i+1, len(chunks), err)
		}
		if n, ok := result["extracted"].(float64); ok {
			extracted += int(n)
		}
	}

	fmt.Printf("%s: %d chunk(s), %d extracted\n", path, len(chunks), extracted)
	return extracted, nil
}

// tokenCounter prefers exact tiktoken counts and falls back to the
// chars-per-token estimate when the encoding can't be initialized.
func tokenCounter() document.TokenCounter {
	counter, err := document.NewTiktokenCounter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ingest: tiktoken unavailable, estimating tokens: %v\n", err)
		return document.EstimateCounter{}
	}
	return counter
}

// matchFiles walks the current directory collecting regular files whose
// relative path matches the glob pattern.
func matchFiles(pattern string) ([]string, error) {
	if strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("ingest: glob must be relative to the current directory")
	}

	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("ingest: invalid glob %q: %w", pattern, err)
	}

	var files []string
	err = filepath.WalkDir(".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			// Don't descend into VCS or dependency directories
			name := entry.Name()
			if name == ".git" || name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher.Match(filepath.ToSlash(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ingest: failed to scan for %q: %w", pattern, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("ingest: no files match %q", pattern)
	}
	return files, nil
}
