package domain

import "path/filepath"

const (
	// DefaultBuildlogPath is where xcodebuild logs are written when no buildlog_path is configured.
	DefaultBuildlogPath = "~/Library/Logs/scan"

	// DefaultOutputDirectory is where test results are written when no output_directory is configured.
	DefaultOutputDirectory = "./test_output"

	// ArchivesPath is the base directory for date-stamped build paths.
	ArchivesPath = "~/Library/Developer/Xcode/Archives"

	// ResultBundleSuffix is appended to the scheme name to form the result bundle path.
	ResultBundleSuffix = ".test_result"

	// LogFileSuffix is the extension of the raw xcodebuild log file.
	LogFileSuffix = ".log"

	// ArchiveDayLayout formats the build path date stamp (YYYY-MM-DD).
	ArchiveDayLayout = "2006-01-02"

	// FastlaneDirName is the conventional directory holding the Scanfile.
	FastlaneDirName = "fastlane"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// ScanfileNames lists the Scanfile names probed in each directory, in order.
var ScanfileNames = []string{"Scanfile.yaml", "Scanfile.yml", "Scanfile.toml"}

// DotenvFileNames lists the dotenv files read from the working directory.
// Earlier files take precedence over later ones.
var DotenvFileNames = []string{".env", ".env.default"}

// LogFileName returns the name of the raw xcodebuild log for an app and scheme.
func LogFileName(appName, scheme string) string {
	return appName + "-" + scheme + LogFileSuffix
}

// ResultBundleName returns the result bundle path relative to the output directory.
func ResultBundleName(outputDirectory, scheme string) string {
	return filepath.Join(outputDirectory, scheme) + ResultBundleSuffix
}
