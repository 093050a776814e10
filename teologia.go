// Package teologia provides a small search tool over a fixed catalog of
// theological and philosophical sources. Sources can be filtered by category
// and by a free-text query matched against author, work and topics, and the
// matches are composed into a short answer with citation links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, slog/).
package teologia
