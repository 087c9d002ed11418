package conf

// Node is the exportable form of a directive, used for structured output. An
// absent block stays nil (null in the output) while an empty block becomes
// an empty list, so the distinction survives serialization.
type Node struct {
	Name  string   `yaml:"name" json:"name"`
	Args  []string `yaml:"args,omitempty" json:"args,omitempty"`
	Block []Node   `yaml:"block" json:"block"`
}

// Export converts a directive tree into nodes suitable for YAML or JSON
// marshalling.
func Export(block Block) []Node {
	nodes := make([]Node, 0, len(block))
	for _, d := range block {
		n := Node{Name: d.Name, Args: d.Args}
		if d.HasBlock() {
			n.Block = Export(d.Block)
		}

		nodes = append(nodes, n)
	}

	return nodes
}
