package regstore

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Node is one key of an in-memory registry tree.
type Node struct {
	Name   string         `yaml:"name"`
	Values map[string]any `yaml:"values,omitempty"`
	Keys   []*Node        `yaml:"keys,omitempty"`

	// Denied makes opening this key fail with ErrAccessDenied.
	Denied bool `yaml:"denied,omitempty"`
	// FailEnumAt makes EnumKey fail with ErrAccessDenied at that index.
	FailEnumAt *int `yaml:"fail_enum_at,omitempty"`
}

// child finds a direct subkey by name. Registry names are case-insensitive.
func (n *Node) child(name string) *Node {
	for _, c := range n.Keys {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// Tree is an in-memory Store rooted at HKEY_LOCAL_MACHINE. It tracks open
// handles so callers can check that every key they opened was closed.
type Tree struct {
	hive *Node

	mu   sync.Mutex
	open int
}

// treeFile is the on-disk layout of a simulated tree: the keys listed are
// the children of Root.
type treeFile struct {
	Root string  `yaml:"root"`
	Keys []*Node `yaml:"keys"`
}

// NewTree builds a tree whose key at root has the given children. Missing
// intermediate keys are created.
func NewTree(root string, keys ...*Node) *Tree {
	hive := &Node{Name: HiveLocalMachine}
	n := hive
	for _, seg := range SplitPath(root) {
		next := n.child(seg)
		if next == nil {
			next = &Node{Name: seg}
			n.Keys = append(n.Keys, next)
		}
		n = next
	}
	n.Keys = append(n.Keys, keys...)
	return &Tree{hive: hive}
}

// LoadTree reads a simulated registry tree from a YAML file.
func LoadTree(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry tree: %w", err)
	}
	return ParseTree(data)
}

// ParseTree decodes a simulated registry tree from YAML.
func ParseTree(data []byte) (*Tree, error) {
	var f treeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse registry tree: %w", err)
	}
	if f.Root == "" {
		return nil, fmt.Errorf("registry tree has no root")
	}
	return NewTree(f.Root, f.Keys...), nil
}

// OpenHandles reports how many keys are currently open.
func (t *Tree) OpenHandles() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

func (t *Tree) OpenKey(path string) (Key, error) {
	n := t.hive
	for _, seg := range SplitPath(path) {
		if n = n.child(seg); n == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
	}
	return t.acquire(n, path)
}

func (t *Tree) acquire(n *Node, path string) (Key, error) {
	if n.Denied {
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, path)
	}
	t.mu.Lock()
	t.open++
	t.mu.Unlock()
	return &treeKey{tree: t, node: n, path: path}, nil
}

type treeKey struct {
	tree   *Tree
	node   *Node
	path   string
	closed bool
}

func (k *treeKey) EnumKey(index int) (string, error) {
	if k.node.FailEnumAt != nil && *k.node.FailEnumAt == index {
		return "", fmt.Errorf("%w: enumerating %s", ErrAccessDenied, k.path)
	}
	if index < 0 || index >= len(k.node.Keys) {
		return "", ErrNoMoreItems
	}
	return k.node.Keys[index].Name, nil
}

func (k *treeKey) OpenSubKey(name string) (Key, error) {
	path := JoinPath(k.path, name)
	c := k.node.child(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
	}
	return k.tree.acquire(c, path)
}

func (k *treeKey) IntegerValue(name string) (uint64, error) {
	v, ok := k.node.Values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s\\%s", ErrNotExist, k.path, name)
	}
	switch n := v.(type) {
	case int:
		if n >= 0 {
			return uint64(n), nil
		}
	case int64:
		if n >= 0 {
			return uint64(n), nil
		}
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s\\%s", ErrUnexpectedType, k.path, name)
}

func (k *treeKey) StringValue(name string) (string, error) {
	v, ok := k.node.Values[name]
	if !ok {
		return "", fmt.Errorf("%w: %s\\%s", ErrNotExist, k.path, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s\\%s", ErrUnexpectedType, k.path, name)
	}
	return s, nil
}

func (k *treeKey) Close() error {
	if k.closed {
		return fmt.Errorf("key %s already closed", k.path)
	}
	k.closed = true
	k.tree.mu.Lock()
	k.tree.open--
	k.tree.mu.Unlock()
	return nil
}
