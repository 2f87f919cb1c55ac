package site

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// PageTree represents a node in the site navigation tree.
type PageTree struct {
	Name     string
	Title    string // Display name from front matter or the first H1.
	Path     string // For pages: html relative path. For dirs: directory path.
	IsDir    bool
	Children []*PageTree
}

// BuildTree constructs a PageTree from a list of html relative paths.
// titleMap maps relative path to display title.
func BuildTree(paths []string, titleMap map[string]string) *PageTree {
	root := &PageTree{Name: "pages", IsDir: true}

	for _, p := range paths {
		p = filepath.ToSlash(p)
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			found := false
			for _, child := range current.Children {
				if child.Name == part {
					current = child
					found = true
					break
				}
			}
			if !found {
				node := &PageTree{
					Name:  part,
					IsDir: !isLast,
				}
				if isLast {
					node.Path = p
					if titleMap != nil {
						if title, ok := titleMap[p]; ok {
							node.Title = title
						}
					}
				} else {
					node.Path = strings.Join(parts[:i+1], "/")
					node.Title = formatDirName(part)
				}
				current.Children = append(current.Children, node)
				current = node
			}
		}
	}

	sortTree(root)
	return root
}

// sortTree recursively sorts tree children: directories first, then files,
// alphabetically.
func sortTree(node *PageTree) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// ToHTML renders the tree as nested <ul><li> HTML for the sidebar. basePath
// is the relative prefix back to the site root (e.g. "../" one level deep).
func (t *PageTree) ToHTML(activePath, basePath string) string {
	activeAncestors := computeActiveAncestors(activePath)

	var b strings.Builder
	homeActive := ""
	if activePath == "index.html" {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="page home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", basePath, homeActive)

	renderChildren(&b, t, activePath, basePath, activeAncestors)
	return b.String()
}

// computeActiveAncestors returns the set of directory paths above activePath.
func computeActiveAncestors(activePath string) map[string]bool {
	ancestors := make(map[string]bool)
	activePath = filepath.ToSlash(activePath)
	parts := strings.Split(activePath, "/")
	for i := 1; i < len(parts); i++ {
		ancestors[strings.Join(parts[:i], "/")] = true
	}
	return ancestors
}

func renderChildren(b *strings.Builder, node *PageTree, activePath, basePath string, activeAncestors map[string]bool) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			expanded := ""
			if activeAncestors[child.Path] {
				expanded = "expanded"
			}
			dirLabel := child.Title
			if dirLabel == "" {
				dirLabel = child.Name
			}
			fmt.Fprintf(b, `<li class="dir %s"><span class="dir-toggle">%s</span>`+"\n", expanded, dirLabel)
			renderChildren(b, child, activePath, basePath, activeAncestors)
			b.WriteString("</li>\n")
		} else {
			if child.Path == "index.html" {
				continue
			}
			displayName := child.Title
			if displayName == "" {
				displayName = strings.TrimSuffix(child.Name, ".html")
			}
			activeClass := ""
			if child.Path == activePath {
				activeClass = ` class="active"`
			}
			fmt.Fprintf(b, `<li class="page"><a href="%s%s"%s>%s</a></li>`+"\n", basePath, child.Path, activeClass, displayName)
		}
	}
	b.WriteString("</ul>\n")
}

// formatDirName converts a directory slug into a display name. Multi-word
// slugs are title-cased.
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
