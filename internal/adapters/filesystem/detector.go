// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Default locations used by Maven and Gradle projects.
const (
	DefaultSourceRoot        = "src/main/java"
	DefaultFallbackNamespace = "com.example"
)

const entryPointSuffix = "Application.java"

// domainDirs are searched in order when no entry point exists.
var domainDirs = []string{"model", "entity", "domain"}

var errFound = errors.New("found")

// Detector implements secondary.NamespaceDetector by scanning a project's source root.
type Detector struct {
	sourceRoot string
	fallback   string
	logger     *slog.Logger
}

// NewDetector creates a detector. Empty arguments select the defaults.
func NewDetector(sourceRoot, fallback string, logger *slog.Logger) *Detector {
	if sourceRoot == "" {
		sourceRoot = DefaultSourceRoot
	}
	if fallback == "" {
		fallback = DefaultFallbackNamespace
	}
	return &Detector{sourceRoot: sourceRoot, fallback: fallback, logger: logger}
}

// Detect returns the base namespace of the project at projectRoot:
//  1. the package of the first *Application.java file, in lexical walk order;
//  2. else the package of the first model, entity or domain directory (each name searched
//     across the whole tree before the next), with a trailing ".model" removed;
//  3. else the fallback namespace.
func (d *Detector) Detect(projectRoot string) string {
	root := filepath.Join(projectRoot, filepath.FromSlash(d.sourceRoot))

	if ns, ok := d.findEntryPoint(root); ok {
		d.logger.Debug("detected base namespace from entry point", "namespace", ns)
		return ns
	}
	for _, name := range domainDirs {
		if ns, ok := d.findDir(root, name); ok {
			base := strings.TrimSuffix(ns, ".model")
			d.logger.Debug("detected base namespace from directory", "dir", name, "namespace", base)
			return base
		}
	}

	d.logger.Debug("no namespace detected, using fallback", "root", root, "namespace", d.fallback)
	return d.fallback
}

func (d *Detector) findEntryPoint(root string) (string, bool) {
	var found string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), entryPointSuffix) {
			return nil
		}
		if ns := d.packageOf(root, filepath.Dir(path)); ns != "" {
			found = ns
			return errFound
		}
		return nil
	})
	return found, d.matched(err, found)
}

func (d *Detector) findDir(root, name string) (string, bool) {
	var found string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() || entry.Name() != name || path == root {
			return nil
		}
		found = d.packageOf(root, path)
		return errFound
	})
	return found, d.matched(err, found)
}

// matched interprets the result of a walk. Walk errors count as no match.
func (d *Detector) matched(err error, found string) bool {
	if err == errFound {
		return found != ""
	}
	if err != nil {
		d.logger.Debug("namespace scan failed", "error", err)
	}
	return false
}

// packageOf converts dir, relative to root, into a dotted package name. The root itself
// has no package and yields "".
func (d *Detector) packageOf(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}
