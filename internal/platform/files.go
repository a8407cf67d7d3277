package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// DownloadsDirName is the folder under the home directory used by default
const DownloadsDirName = "Downloads"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// execCommand is replaced in tests
var execCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// lookPath is replaced in tests
var lookPath = exec.LookPath

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return execCommand(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return execCommand(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		return openParentDirLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openParentDirLinux opens the directory containing the file.
// File selection is not standardized on Linux.
func openParentDirLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := execCommand(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := lookPath(fm); err == nil {
			return execCommand(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DownloadsDirName), nil
}
