package dictionary

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rapidmidiex/rmxfret/theory"
	"gopkg.in/yaml.v3"
)

//go:embed definitions
var definitionsFS embed.FS

const (
	chordsFile  = "chords.json"
	scalesFile  = "scales.json"
	tuningsFile = "tunings.json"
)

type (
	scaleDef struct {
		Intervals []int `yaml:"intervals"`
	}

	tuningDef struct {
		Name    string   `yaml:"name"`
		Type    string   `yaml:"type"`
		Strings []string `yaml:"strings"`
	}
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	var cat Catalog
	var err error

	if cat.Chords, err = LoadChords(openDefinition(chordsFile)); err != nil {
		return nil, fmt.Errorf("load embedded chords: %w", err)
	}
	if cat.Scales, err = LoadScales(openDefinition(scalesFile)); err != nil {
		return nil, fmt.Errorf("load embedded scales: %w", err)
	}
	if cat.Tunings, err = LoadTunings(openDefinition(tuningsFile)); err != nil {
		return nil, fmt.Errorf("load embedded tunings: %w", err)
	}
	return &cat, nil
}

func openDefinition(name string) io.Reader {
	b, err := definitionsFS.ReadFile(path.Join("definitions", name))
	if err != nil {
		// Embedded at build time, can only fail if the directory was renamed.
		panic(err)
	}
	return bytes.NewReader(b)
}

// LoadChords reads a chord dictionary in the form {"name": [0, 4, 7], ...}.
// YAML mappings are accepted too.
func LoadChords(r io.Reader) (*Chords, error) {
	root, err := decodeRoot(r)
	if err != nil {
		return nil, err
	}
	return chordsFromNode(root)
}

// LoadScales reads a scale dictionary in the form {"name": {"intervals": [...]}, ...}.
func LoadScales(r io.Reader) (*Scales, error) {
	root, err := decodeRoot(r)
	if err != nil {
		return nil, err
	}
	return scalesFromNode(root)
}

// LoadTunings reads a tuning list in the form [{"name", "type", "strings"}, ...].
func LoadTunings(r io.Reader) (*Tunings, error) {
	root, err := decodeRoot(r)
	if err != nil {
		return nil, err
	}
	return tuningsFromNode(root)
}

// LoadFile reads a user catalog holding any of the "chords", "scales" and
// "tunings" sections. Sections left out fall back to the embedded ones.
func LoadFile(filename string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("load catalog %s: unsupported file type", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", filename, err)
	}
	return cat, nil
}

// Load reads a catalog document from r. See LoadFile.
func Load(r io.Reader) (*Catalog, error) {
	cat, err := Default()
	if err != nil {
		return nil, err
	}

	root, err := decodeRoot(r)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		switch key {
		case "chords":
			if cat.Chords, err = chordsFromNode(value); err != nil {
				return nil, err
			}
		case "scales":
			if cat.Scales, err = scalesFromNode(value); err != nil {
				return nil, err
			}
		case "tunings":
			if cat.Tunings, err = tuningsFromNode(value); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("line %d: unknown section %q", root.Content[i].Line, key)
		}
	}
	return cat, nil
}

func decodeRoot(r io.Reader) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

// Mapping nodes are walked by hand since decoding into a Go map loses the
// declaration order.
func chordsFromNode(n *yaml.Node) (*Chords, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: chords must be a mapping", n.Line)
	}
	chords := make([]Chord, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		var intervals []int
		if err := n.Content[i+1].Decode(&intervals); err != nil {
			return nil, fmt.Errorf("chord %q: %w", name, err)
		}
		chords = append(chords, Chord{Name: name, Intervals: theory.FromInts(intervals)})
	}
	return NewChords(chords)
}

func scalesFromNode(n *yaml.Node) (*Scales, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: scales must be a mapping", n.Line)
	}
	scales := make([]Scale, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		var def scaleDef
		if err := n.Content[i+1].Decode(&def); err != nil {
			return nil, fmt.Errorf("scale %q: %w", name, err)
		}
		scales = append(scales, Scale{Name: name, Intervals: theory.FromInts(def.Intervals)})
	}
	return NewScales(scales)
}

func tuningsFromNode(n *yaml.Node) (*Tunings, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: tunings must be a list", n.Line)
	}
	var defs []tuningDef
	if err := n.Decode(&defs); err != nil {
		return nil, fmt.Errorf("tunings: %w", err)
	}
	tunings := make([]Tuning, 0, len(defs))
	for _, def := range defs {
		notes := make([]theory.Note, len(def.Strings))
		for i, s := range def.Strings {
			notes[i] = theory.Note(s)
		}
		tunings = append(tunings, Tuning{
			Name:       def.Name,
			Instrument: Instrument(def.Type),
			Strings:    notes,
		})
	}
	return NewTunings(tunings)
}
