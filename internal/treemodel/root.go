package treemodel

import (
	"net/url"
	"sort"
)

// rootNode anchors the tree and resolves the owning model for every
// descendant. Its children are exclusively host rows ordered by canonical
// host key.
type rootNode struct {
	baseNode
	model *TreeModel
}

func newRootNode(m *TreeModel) *rootNode {
	return &rootNode{model: m}
}

func (r *rootNode) Model() *TreeModel { return r.model }
func (r *rootNode) Detail() Detail    { return RootDetail{} }

// GetOrCreateHostNode returns the host row for url's canonicalized host,
// creating and inserting it in canonical order if absent. There is exactly
// one host row per canonicalized host at any time.
func (r *rootNode) GetOrCreateHostNode(u *url.URL) *HostNode {
	host := newHostNode(u)

	// Hosts sort by canonical key, not title, so related subdomains
	// group under their registrable domain.
	kids := r.children
	i := sort.Search(len(kids), func(i int) bool {
		existing, ok := kids[i].(*HostNode)
		if !ok {
			panic("treemodel: non-host child under root: " + kids[i].Detail().NodeType().String())
		}
		return existing.canonicalKey >= host.canonicalKey
	})

	if i < len(kids) && kids[i].Title() == host.Title() {
		return kids[i].(*HostNode)
	}

	r.model.Add(r, host, i)
	return host
}
