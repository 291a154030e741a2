package model

// ExitCode is the fixed set of process exit codes the CLI returns.
type ExitCode int

// Exit codes.
const (
	ExitSuccess                     ExitCode = 0
	ExitTestsFailed                 ExitCode = 1
	ExitHelpShown                   ExitCode = 2
	ExitInvalidArguments            ExitCode = 3
	ExitPackageNotFound             ExitCode = 4
	ExitTimedOut                    ExitCode = 70
	ExitGeneralFailure              ExitCode = 71
	ExitPackageInstallationFailure  ExitCode = 78
	ExitAppCrash                    ExitCode = 80
	ExitDeviceNotFound              ExitCode = 81
	ExitReturnCodeNotSet            ExitCode = 82
	ExitAppLaunchFailure            ExitCode = 83
	ExitDeviceFileCopyFailure       ExitCode = 84
	ExitSimulatorFailure            ExitCode = 85
	ExitDeviceFailure               ExitCode = 86
	ExitAdbDeviceEnumerationFailure ExitCode = 87
)

var exitCodeNames = map[ExitCode]string{
	ExitSuccess:                     "SUCCESS",
	ExitTestsFailed:                 "TESTS_FAILED",
	ExitHelpShown:                   "HELP_SHOWN",
	ExitInvalidArguments:            "INVALID_ARGUMENTS",
	ExitPackageNotFound:             "PACKAGE_NOT_FOUND",
	ExitTimedOut:                    "TIMED_OUT",
	ExitGeneralFailure:              "GENERAL_FAILURE",
	ExitPackageInstallationFailure:  "PACKAGE_INSTALLATION_FAILURE",
	ExitAppCrash:                    "APP_CRASH",
	ExitDeviceNotFound:              "DEVICE_NOT_FOUND",
	ExitReturnCodeNotSet:            "RETURN_CODE_NOT_SET",
	ExitAppLaunchFailure:            "APP_LAUNCH_FAILURE",
	ExitDeviceFileCopyFailure:       "DEVICE_FILE_COPY_FAILURE",
	ExitSimulatorFailure:            "SIMULATOR_FAILURE",
	ExitDeviceFailure:               "DEVICE_FAILURE",
	ExitAdbDeviceEnumerationFailure: "ADB_DEVICE_ENUMERATION_FAILURE",
}

func (c ExitCode) String() string {
	if name, ok := exitCodeNames[c]; ok {
		return name
	}

	return "UNKNOWN"
}
