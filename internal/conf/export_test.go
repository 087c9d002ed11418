package conf

import "testing"

func TestExport(t *testing.T) {
	block, err := Parse("user www; events {} http { server {} }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	nodes := Export(block)
	if len(nodes) != 3 {
		t.Fatalf("want 3 nodes, got %d", len(nodes))
	}

	if nodes[0].Block != nil {
		t.Errorf("user: want nil block, got %v", nodes[0].Block)
	}

	if nodes[1].Block == nil || len(nodes[1].Block) != 0 {
		t.Errorf("events: want present, empty block, got %#v", nodes[1].Block)
	}

	http := nodes[2]
	if len(http.Block) != 1 || http.Block[0].Name != "server" {
		t.Errorf("http: unexpected block %#v", http.Block)
	}
}
