// Package archive persists solve runs to disk and reads them back.
//
// What:
//
//   - Save serializes a solver.Result — start board, every retained
//     solution and the best set, all in their rendered text form — into a
//     single zstd-compressed JSON document, stamped with a generated run ID
//     and creation time.
//   - Load decompresses and decodes an archive written by Save.
//
// Why:
//
//   - Exhaustive runs on non-trivial inputs can take a while and produce
//     large solution sets; archiving lets the CLI separate "solve once"
//     from "inspect many times", and compressed text boards shrink well.
//
// The document stores rendered boards, not structural grids: an archive is
// a report, and the renderings are exactly what the CLI would have printed.
//
// Errors:
//
//   - ErrBadArchive: the file is not a gridpack archive (bad compression
//     framing or malformed JSON). I/O errors are returned wrapped as-is.
package archive
