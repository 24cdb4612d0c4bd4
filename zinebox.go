// Package zinebox provides a local, CLI-based mirror of a text-zine
// archive. It discovers issue tarballs from a remote index page, downloads
// the ones missing locally, and provides list, search, and view operations
// over the plain-text issues stored in the archive directory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package zinebox
