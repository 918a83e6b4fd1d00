// Package treemodel implements the hierarchical tree of a user's client-side
// browsing data.
//
// The tree groups stored records by origin host: the root holds one HostNode
// per distinct canonicalized host, each host holds at most one child per
// data category (a plural container such as "Cookies", or a singleton leaf
// for quota and flash data), and containers hold one leaf per raw record.
// Hosts under the root are ordered by registrable domain so related
// subdomains sort together; everything else is ordered by display title.
//
// The model populates itself from a browsing.Container, supports live
// substring filtering as a full teardown and rebuild, and implements
// cascading deletion: deleting a leaf invokes the category's external
// deleter, erases the backing record, and prunes ancestors that become
// empty. Mutation spans are reported to observers as coalesced batches.
//
// The model is single-threaded by design. Every operation runs to
// completion before returning and no internal locking is performed;
// cross-thread access is the embedder's responsibility.
package treemodel
