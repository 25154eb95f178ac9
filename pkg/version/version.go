package version

// Version is overwritten at build time with -ldflags "-X github.com/c9s/mexcgo/pkg/version.Version=..."
var Version = "v0.1.0-dev"
