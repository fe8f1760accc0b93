package types

// Version is overwritten at build time with -ldflags "-X ...types.Version=..."
var Version = "dev"

// AppName is used for the CLI, log fields and error reporting
const AppName = "tokrecharge-migration"

// IndexFile is the default document of the static root
const IndexFile = "index.html"
