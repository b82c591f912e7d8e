package manifest

import (
	"bytes"

	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Section keys that mark a project-style manifest.
const (
	keyDependencies    = "dependencies"
	keyDevDependencies = "devDependencies"
	keyFrameworks      = "frameworks"
	keyVersion         = "version"
)

// ParserVersion identifies the extraction rules of Parse. Cached
// extractions made under another version are ignored; it changes whenever
// Parse returns different references for the same input.
const ParserVersion = "2"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse extracts the package references declared by a manifest document.
//
// Documents are read through the YAML node API so that references keep the
// order in which they are declared. JSON manifests are valid YAML.
//
// A project-style document has a dependencies, devDependencies or frameworks
// section; references are taken from those sections in document order,
// including frameworks.<name>.dependencies. Any other mapping is read as a
// flat name-to-version map in which only scalar values and mappings with a
// version key count as references; lists and other fields are skipped.
func Parse(data []byte) ([]domain.PackageReference, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		// Raw tabs are only legal as whitespace in JSON, but YAML rejects
		// them in some positions.
		data = bytes.ReplaceAll(data, []byte{'\t'}, []byte{' '})
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "document is not a mapping")
	}

	if isProjectStyle(root) {
		return parseProject(root)
	}
	return parseDependencies(root, false)
}

func isProjectStyle(root *yaml.Node) bool {
	for i := 0; i+1 < len(root.Content); i += 2 {
		switch root.Content[i].Value {
		case keyDependencies, keyDevDependencies, keyFrameworks:
			return true
		}
	}
	return false
}

func parseProject(root *yaml.Node) ([]domain.PackageReference, error) {
	var refs []domain.PackageReference
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		switch key.Value {
		case keyDependencies, keyDevDependencies:
			deps, err := parseSection(key.Value, value)
			if err != nil {
				return nil, err
			}
			refs = append(refs, deps...)
		case keyFrameworks:
			deps, err := parseFrameworks(value)
			if err != nil {
				return nil, err
			}
			refs = append(refs, deps...)
		}
	}
	return refs, nil
}

func parseFrameworks(node *yaml.Node) ([]domain.PackageReference, error) {
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrManifestParseFailed, "section", keyFrameworks)
	}

	var refs []domain.PackageReference
	for i := 0; i+1 < len(node.Content); i += 2 {
		framework, body := node.Content[i].Value, node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			continue
		}
		if deps := mappingValue(body, keyDependencies); deps != nil {
			parsed, err := parseSection(keyFrameworks+"."+framework+"."+keyDependencies, deps)
			if err != nil {
				return nil, err
			}
			refs = append(refs, parsed...)
		}
	}
	return refs, nil
}

func parseSection(section string, node *yaml.Node) ([]domain.PackageReference, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrManifestParseFailed, "section", section)
	}
	return parseDependencies(node, true)
}

// parseDependencies reads a name-to-version mapping. A version is either a
// scalar or a mapping with a version key; entries without a version, such as
// project references, are skipped. In a strict section any other value is an
// error.
func parseDependencies(node *yaml.Node, strict bool) ([]domain.PackageReference, error) {
	refs := make([]domain.PackageReference, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i].Value, node.Content[i+1]

		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				continue
			}
			refs = append(refs, domain.PackageReference{Name: name, Version: value.Value})
		case yaml.MappingNode:
			version := mappingValue(value, keyVersion)
			if version == nil || version.Kind != yaml.ScalarNode {
				continue
			}
			refs = append(refs, domain.PackageReference{Name: name, Version: version.Value})
		default:
			if !strict {
				continue
			}
			return nil, zerr.With(domain.ErrManifestParseFailed, "package", name)
		}
	}
	return refs, nil
}

// mappingValue returns the value node for key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
