package platform

// Package platform contains OS integration and external tooling glue:
// the ytdlp backed extractor (with per-file locking and a magic-byte check
// of the result), video URL helpers, the downloads directory,
// reveal-in-file-manager and clipboard access.
