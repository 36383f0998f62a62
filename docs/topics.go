// Package docs holds the embedded documentation topics served by the crc
// "topic" command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// All returns the names of every available topic, sorted. The readme is the
// table of contents, not a topic of its own.
func All() ([]string, error) {
	files, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range files {
		name := strings.TrimSuffix(f, ".md")
		if name != "readme" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Topic returns the content of one documentation topic.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the content of the named topics. The name "*" stands
// for all of them.
func Topics(names ...string) (string, error) {
	expanded, err := expand(names)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, name := range expanded {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// expand replaces every "*" with the full topic list.
func expand(names []string) ([]string, error) {
	var out []string
	for _, name := range names {
		if name != "*" {
			out = append(out, name)
			continue
		}
		all, err := All()
		if err != nil {
			return nil, err
		}
		out = append(out, all...)
	}
	return out, nil
}
