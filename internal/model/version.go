package model

// Version is the current dirhop release. Overridden at build time via
// -ldflags "-X dirhop/internal/model.Version=...".
var Version = "0.3.1"
