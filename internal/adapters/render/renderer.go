// Package render implements template rendering over the embedded template tree.
package render

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"text/template/parse"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/example/springscaffold/internal/scaffolderr"
	tmpl "github.com/example/springscaffold/internal/templates/scaffold"
)

const cacheSize = 64

// Renderer implements secondary.TemplateRenderer with text/template. Templates are looked
// up first in the optional override directory, then in the embedded tree.
type Renderer struct {
	overrideDir string
	funcs       template.FuncMap
	cache       *lru.Cache[string, *compiled]
	logger      *slog.Logger
}

// compiled is a parsed template plus the top-level keys it references.
type compiled struct {
	tmpl *template.Template
	keys map[string]keyUse
}

// keyUse records how a template consumes a top-level key.
type keyUse int

const (
	usedAsValue keyUse = iota
	usedAsList
)

// NewRenderer creates a renderer. overrideDir may be empty.
func NewRenderer(overrideDir string, logger *slog.Logger) (*Renderer, error) {
	cache, err := lru.New[string, *compiled](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create template cache")
	}
	return &Renderer{
		overrideDir: overrideDir,
		funcs:       tmpl.TemplateFuncs(),
		cache:       cache,
		logger:      logger,
	}, nil
}

// Render executes the named template against data. Top-level keys the template references
// but data lacks render as empty.
func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	c, err := r.compile(name)
	if err != nil {
		return "", &scaffolderr.TemplateError{Template: name, Err: err}
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, withDefaults(data, c.keys)); err != nil {
		return "", &scaffolderr.TemplateError{Template: name, Err: err}
	}
	return buf.String(), nil
}

func (r *Renderer) compile(name string) (*compiled, error) {
	if c, ok := r.cache.Get(name); ok {
		return c, nil
	}

	source, err := r.load(name)
	if err != nil {
		return nil, err
	}
	t, err := template.New(name).Funcs(r.funcs).Option("missingkey=default").Parse(source)
	if err != nil {
		return nil, err
	}

	c := &compiled{tmpl: t, keys: topLevelKeys(t)}
	r.cache.Add(name, c)
	return c, nil
}

// load reads the template source, preferring the override directory.
func (r *Renderer) load(name string) (string, error) {
	if r.overrideDir != "" {
		path := filepath.Join(r.overrideDir, filepath.FromSlash(name)+tmpl.Extension)
		content, err := os.ReadFile(path)
		if err == nil {
			r.logger.Debug("using template override", "template", name, "path", path)
			return string(content), nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "failed to read override %s", path)
		}
	}

	content, err := tmpl.GetTemplate(name)
	if err != nil {
		return "", errors.Errorf("template not found")
	}
	return content, nil
}

// withDefaults returns a copy of data where every referenced but missing key is present:
// an empty list for keys ranged over, an empty string otherwise.
func withDefaults(data map[string]any, keys map[string]keyUse) map[string]any {
	out := make(map[string]any, len(data)+len(keys))
	for k, v := range data {
		out[k] = v
	}
	for k, use := range keys {
		if _, ok := out[k]; ok {
			continue
		}
		if use == usedAsList {
			out[k] = []any{}
		} else {
			out[k] = ""
		}
	}
	return out
}

// topLevelKeys walks every tree of t and collects the fields read from the root context.
func topLevelKeys(t *template.Template) map[string]keyUse {
	keys := make(map[string]keyUse)
	for _, tt := range t.Templates() {
		if tt.Tree != nil && tt.Tree.Root != nil {
			walkNode(tt.Tree.Root, true, keys)
		}
	}
	return keys
}

// walkNode visits n. atRoot is true while dot is still the root context.
func walkNode(n parse.Node, atRoot bool, keys map[string]keyUse) {
	switch n := n.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			walkNode(child, atRoot, keys)
		}
	case *parse.ActionNode:
		walkPipe(n.Pipe, atRoot, false, keys)
	case *parse.IfNode:
		walkPipe(n.Pipe, atRoot, false, keys)
		walkNode(n.List, atRoot, keys)
		walkNode(n.ElseList, atRoot, keys)
	case *parse.RangeNode:
		walkPipe(n.Pipe, atRoot, true, keys)
		walkNode(n.List, false, keys)
		walkNode(n.ElseList, atRoot, keys)
	case *parse.WithNode:
		walkPipe(n.Pipe, atRoot, false, keys)
		walkNode(n.List, false, keys)
		walkNode(n.ElseList, atRoot, keys)
	case *parse.TemplateNode:
		walkPipe(n.Pipe, atRoot, false, keys)
	}
}

func walkPipe(p *parse.PipeNode, atRoot, ranged bool, keys map[string]keyUse) {
	if p == nil {
		return
	}
	single := ranged && len(p.Cmds) == 1 && len(p.Cmds[0].Args) == 1
	for _, cmd := range p.Cmds {
		for _, arg := range cmd.Args {
			switch a := arg.(type) {
			case *parse.FieldNode:
				if atRoot {
					record(keys, a.Ident[0], single)
				}
			case *parse.VariableNode:
				if len(a.Ident) > 1 && a.Ident[0] == "$" {
					record(keys, a.Ident[1], single)
				}
			case *parse.PipeNode:
				walkPipe(a, atRoot, false, keys)
			}
		}
	}
}

func record(keys map[string]keyUse, key string, asList bool) {
	if asList {
		keys[key] = usedAsList
		return
	}
	if _, ok := keys[key]; !ok {
		keys[key] = usedAsValue
	}
}
