// Package codec defines the document types mirroring the node/link wire
// contract.
package codec

import "github.com/graphloom/digraph/core"

// Node is one entry of the document's node enumeration.
type Node struct {
	ID string `json:"id"`
}

// Link is one directed edge record. Weight is a pointer so that an absent
// weight (default-1 rule applies) is distinguishable from an explicit 0.
type Link struct {
	Source string        `json:"source"`
	Target string        `json:"target"`
	Weight *float64      `json:"weight,omitempty"`
	Data   core.Metadata `json:"data,omitempty"`
}

// Document is the serialized form of a graph: the derived node set plus
// every adjacency entry as a link, in order.
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}
