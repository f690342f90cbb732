// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docgen renders docs/toknack.md into docs/man/man1/toknack.1 and a tldr
// page at docs/tldr/toknack.md.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

const projectURL = "https://github.com/staranto/toknack"

func main() {
	var (
		root          string
		onlyIfChanged bool
	)

	flag.StringVar(&root, "root", ".", "repo root")
	flag.BoolVar(&onlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	if err := generate(root, onlyIfChanged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(root string, onlyIfChanged bool) error {
	src := filepath.Join(root, "docs", "toknack.md")
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	manDir := filepath.Join(root, "docs", "man", "man1")
	tldrDir := filepath.Join(root, "docs", "tldr")
	for _, d := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}

	manPath := filepath.Join(manDir, "toknack.1")
	if err := writeIfChanged(manPath, md2man.Render(raw), onlyIfChanged); err != nil {
		return fmt.Errorf("writing %s: %w", manPath, err)
	}

	page := tldrPage(summary(string(raw)), examples(string(raw)))
	tldrPath := filepath.Join(tldrDir, "toknack.md")
	if err := writeIfChanged(tldrPath, []byte(page), onlyIfChanged); err != nil {
		return fmt.Errorf("writing %s: %w", tldrPath, err)
	}

	return nil
}

func writeIfChanged(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

var headingRe = regexp.MustCompile(`^#+\s+(.+)$`)

// section returns the body of the first heading whose text matches name,
// case-insensitively, up to the next heading. Lines inside fenced code
// blocks are never headings.
func section(md, name string) string {
	var (
		body    []string
		inFence bool
		found   bool
	)

	for _, ln := range strings.Split(md, "\n") {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			inFence = !inFence
		} else if m := headingRe.FindStringSubmatch(ln); m != nil && !inFence {
			if found {
				break
			}
			found = strings.EqualFold(strings.TrimSpace(m[1]), name)
			continue
		}
		if found {
			body = append(body, ln)
		}
	}

	return strings.Join(body, "\n")
}

// summary is the first paragraph of the DESCRIPTION section.
func summary(md string) string {
	var parts []string
	for _, ln := range strings.Split(section(md, "description"), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, ln)
	}
	return strings.Join(parts, " ")
}

type example struct {
	Desc string
	Cmd  string
}

// examples reads "# description" / command pairs from the first fenced
// block of the EXAMPLES section.
func examples(md string) []example {
	body := section(md, "examples")
	start := strings.Index(body, "```")
	if start < 0 {
		return nil
	}
	body = body[start+3:]
	end := strings.Index(body, "```")
	if end < 0 {
		return nil
	}

	var out []example
	desc := ""
	for i, ln := range strings.Split(body[:end], "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case i == 0, ln == "":
			// fence info string or blank
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimLeft(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			out = append(out, example{Desc: desc, Cmd: strings.Join(strings.Fields(ln), " ")})
			desc = ""
		}
	}
	return out
}

func tldrPage(short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# toknack\n\n")
	if short == "" {
		short = "List a CLI command table and generate registration snippets."
	}
	fmt.Fprintf(&b, "> %s\n> More information: %s.\n", short, projectURL)

	if len(exs) == 0 {
		exs = []example{{Desc: "Show help", Cmd: "toknack --help"}}
	}
	for _, ex := range exs {
		fmt.Fprintf(&b, "\n- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}
	return b.String()
}
