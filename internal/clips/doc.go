// Package clips implements the clip-assembly core: parsing Steam game
// recording directory names, locating the fragmented-media segment
// directory inside a clip, ordering chunk files by sequence number, and
// concatenating initialization segment plus chunks into one contiguous
// elementary stream per track.
//
// The assembler is byte-exact and protocol-agnostic: it never inspects or
// rewrites the ISO-BMFF structure inside the segments. Each clip is
// processed inside a Workspace, a uniquely named temporary directory that
// is removed when the clip finishes regardless of outcome.
package clips
