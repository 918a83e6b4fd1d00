// Package browsing holds the raw client-side browsing data records and the
// container that owns them.
//
// The container is the single source of truth for what is stored on disk for
// each category (cookies, databases, local/session storage, appcaches,
// indexed databases, file systems, quota usage, server-bound certificates,
// flash local shared objects). The tree model only references records owned
// here; deleting a leaf erases the backing record so a later rebuild cannot
// resurrect it.
//
// Actual deletion of the underlying stored objects is delegated to the
// per-category deleter interfaces. The embedder supplies implementations
// backed by whatever stores it manages; all calls are synchronous and
// fire-and-forget from the container's point of view.
package browsing
