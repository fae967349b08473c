// Package rules loads comparison rules from YAML files for the CLI.
//
// A rules file is a list of entries:
//
//	- option: any-order
//	  paths: ["items"]
//	  scope: subtree
//	- option: type-only
//	  paths: ["id", "createdAt"]
//	- option: element-count
//	  count: 3
//	  paths: ["items"]
//
// Unknown options, scopes, or missing counts are load errors; a rules file
// mistake should stop the run, not surface as a document mismatch.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/jsonspec/packages/config"
	"github.com/abdul-hamid-achik/jsonspec/packages/jsonpath"
)

// Rule is one entry of a rules file.
type Rule struct {
	Option string   `yaml:"option"`
	Paths  []string `yaml:"paths"`
	Scope  string   `yaml:"scope"`
	Value  *bool    `yaml:"value"`
	Count  *int     `yaml:"count"`
}

// Load reads and parses a rules file.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML rule list.
func Parse(data []byte) ([]Rule, error) {
	var rs []Rule
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return rs, nil
}

// Build turns rules into a configuration tree, applying them in order.
func Build(rs []Rule) (*config.Node, error) {
	root := config.NewRoot()
	for i, r := range rs {
		if err := apply(root, r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
	}
	return root, nil
}

func apply(root *config.Node, r Rule) error {
	scope, err := parseScope(r.Scope)
	if err != nil {
		return err
	}
	paths := []jsonpath.Path{jsonpath.Root}
	if len(r.Paths) > 0 {
		paths = paths[:0]
		for _, p := range r.Paths {
			paths = append(paths, jsonpath.Parse(p))
		}
	}

	if r.Option == "element-count" {
		if r.Count == nil {
			return fmt.Errorf("option element-count requires a count")
		}
		if scope == config.Subtree {
			return fmt.Errorf("option element-count has no subtree form")
		}
		for _, p := range paths {
			root.SetElementCount(*r.Count, p)
		}
		return nil
	}

	opt, on, err := parseOption(r.Option)
	if err != nil {
		return err
	}
	// An explicit false flips the option's natural sense, e.g.
	// {option: any-order, value: false} restores positional matching.
	if r.Value != nil && !*r.Value {
		on = !on
	}
	for _, p := range paths {
		root.Set(opt, on, p, scope)
	}
	return nil
}

func parseOption(name string) (config.Option, bool, error) {
	switch name {
	case "any-order":
		return config.AnyOrder, true, nil
	case "exact-match", "exact":
		return config.ExactMatch, true, nil
	case "type-only":
		return config.ExactMatch, false, nil
	case "equal-count":
		return config.EqualCount, true, nil
	case "absent":
		return config.Absent, true, nil
	case "not-equal":
		return config.NotEqual, true, nil
	case "":
		return 0, false, fmt.Errorf("missing option")
	default:
		return 0, false, fmt.Errorf("unknown option %q", name)
	}
}

func parseScope(s string) (config.Scope, error) {
	switch s {
	case "", "single", "single-node":
		return config.SingleNode, nil
	case "subtree":
		return config.Subtree, nil
	default:
		return 0, fmt.Errorf("unknown scope %q", s)
	}
}
