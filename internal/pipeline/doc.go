// Package pipeline drives the export run: it enumerates candidate clip
// directories, and for each clip locates the segment directory, assembles
// the two elementary streams inside a clip-scoped workspace, resolves the
// output name, and invokes the muxer.
//
// Clips are processed sequentially. A failure in one clip is contained,
// logged, and counted; it never aborts the batch. The workspace is removed
// on every exit path, so nothing leaks from one clip into the next. A file
// lock keeps two exporter instances from running concurrently.
package pipeline
