// Package hnfav exports a Hacker News user's favorited threads as
// markdown documents. It walks the paginated favorites listing, fetches
// each thread, flattens the comment rows into (depth, author, text)
// records and renders them as an indented outline.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, fs/).
package hnfav
