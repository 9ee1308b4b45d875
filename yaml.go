// yaml.go - YAML export with the same shape and order as the JSON export.
package errcollect

import "gopkg.in/yaml.v3"

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// MarshalYAML renders the Error to a string scalar.
func (e *Error) MarshalYAML() (any, error) {
	s, err := e.Render()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MarshalYAML encodes the collection as an ordered mapping of attribute to
// a sequence of rendered messages. Empty attributes are omitted.
func (c *Collection) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, g := range c.Groups() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range g.Errors {
			s, err := e.Render()
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, strNode(s))
		}
		node.Content = append(node.Content, strNode(g.Attribute), seq)
	}
	return node, nil
}

var (
	_ yaml.Marshaler = (*Error)(nil)
	_ yaml.Marshaler = (*Collection)(nil)
)
