package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

const appDirName = "wordfix"

// PathResolver locates dictionary and config files relative to the
// executable, the working directory and the user config directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory for wordfix.
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appDirName)
		}
		return filepath.Join(homeDir, ".config", appDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appDirName)
	default:
		return filepath.Join(homeDir, ".config", appDirName)
	}
}

// ResolveDictPath finds a dictionary file. Candidates, in order:
// the path as given (absolute or relative to cwd), next to the executable,
// and inside the config directory. If nothing exists the path is returned
// unchanged so the caller reports the error against what the user typed.
func (pr *PathResolver) ResolveDictPath(userPath string) string {
	if userPath == "" {
		return ""
	}
	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, userPath),
			filepath.Join(pr.configDir, userPath),
		)
	}
	for _, path := range candidates {
		if IsRegularFile(path) {
			log.Debugf("Found dictionary: %s", path)
			return path
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return userPath
}

// GetConfigPath returns the full path for a config file, falling back to
// other writable locations when the config directory cannot be created.
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+appDirName),
		filepath.Join(os.TempDir(), appDirName),
	}
	for i, dir := range dirs {
		if err := EnsureDir(dir); err != nil {
			log.Debugf("Cannot create config directory %s: %v", dir, err)
			continue
		}
		path := filepath.Join(dir, filename)
		if i > 0 {
			log.Warnf("Using fallback config location: %s", path)
		}
		return path
	}
	path := filepath.Join(pr.executableDir, filename)
	log.Warnf("Using config next to executable: %s", path)
	return path
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
