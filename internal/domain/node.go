package domain

import (
	"strconv"
	"strings"
)

// Node is one of the fixed host machines servers can be placed on.
type Node struct {
	ID   int
	Name string

	// Address is the alias or IP that the node's allocations are
	// registered under on the panel.
	Address string
}

// Nodes is the closed set of hosts known to ptprov, ordered by ID.
var Nodes = []Node{
	{ID: 1, Name: "Metis", Address: "metis.lighthouse-servers.com"},
	{ID: 2, Name: "Amalthea", Address: "104.243.46.28"},
	{ID: 3, Name: "Adrastea", Address: "adrastea.lighthouse-servers.com"},
}

// ParseNode resolves a node by case-insensitive name or by its numeric ID
// string ("1", "2", "3"). Surrounding whitespace is ignored.
func ParseNode(input string) (Node, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Node{}, false
	}
	for _, n := range Nodes {
		if strings.EqualFold(n.Name, input) || strconv.Itoa(n.ID) == input {
			return n, true
		}
	}
	return Node{}, false
}

// NodeByID returns the node with the given ID.
func NodeByID(id int) (Node, bool) {
	for _, n := range Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
