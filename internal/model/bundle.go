package model

// ExtensionKind names the kind of app extension a bundle is, if any.
type ExtensionKind string

// Known extension kinds.
const (
	ExtensionNone        ExtensionKind = ""
	ExtensionTodayWidget ExtensionKind = "today-extension"
	ExtensionWatchKit2   ExtensionKind = "watchkit2-extension"
)

// AppBundleInformation describes the payload to run. It is built once by the bundle
// reader and shared read-only afterwards.
type AppBundleInformation struct {
	AppName          string
	BundleIdentifier string
	// AppPath is the on-disk bundle (or apk) path.
	AppPath string
	// LaunchAppPath differs from AppPath for nested extensions and watch apps.
	LaunchAppPath string
	Supports32Bit bool
	Extension     ExtensionKind
}

// NewAppBundleInformation returns a bundle description. An empty launchPath means the
// bundle itself is launched.
func NewAppBundleInformation(name, identifier, path, launchPath string, supports32Bit bool, extension ExtensionKind) AppBundleInformation {
	if launchPath == "" {
		launchPath = path
	}

	return AppBundleInformation{
		AppName:          name,
		BundleIdentifier: identifier,
		AppPath:          path,
		LaunchAppPath:    launchPath,
		Supports32Bit:    supports32Bit,
		Extension:        extension,
	}
}
