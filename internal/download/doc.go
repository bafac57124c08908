// Package download implements the batch pipeline built on top of yt-dlp: it
// resolves metadata, fetches media one item at a time, isolates per-item
// failures, and hands the accumulated rows to the report writer. Two
// workflows are exposed, single video and playlist.
package download
