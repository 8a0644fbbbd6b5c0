package version

// will be replaced with the release version by the build pipeline
var version = "development"

// BootstrapVersion returns the bootstrapper version
func BootstrapVersion() string {
	return version
}
