// Package filesink provides an append-to-file sink with size- and
// schedule-based rotation, the desktop analog of an SD-card log file.
//
// Rotated files are renamed with a timestamp suffix and pruned by
// MaxBackups. With SyncEveryAppend set, every append is followed by an
// fsync so that a completed flush survives power loss.
package filesink
