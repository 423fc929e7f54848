// internal/version/version.go
package version

// Version is stamped into VCF headers and --version output.
const Version = "0.1.0"
