package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"gopkg.in/yaml.v2"
)

const moduleName = "github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager"

var projectRootDirectory = GetProjectRootDir()

// GetProjectRootDir walks up from the working directory to the folder holding this module's go.mod.
// The working directory is returned when no such folder exists, e.g. in a container image.
func GetProjectRootDir() string {
	workingDir, err := os.Getwd()
	if err != nil {
		glog.Fatal(err)
	}
	for dir := workingDir; ; dir = filepath.Dir(dir) {
		goMod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil && strings.Contains(string(goMod), "module "+moduleName) {
			return dir
		}
		if parent := filepath.Dir(dir); parent == dir {
			return workingDir
		}
	}
}

// ReadFileValueInt reads the contents of file into an integer value
func ReadFileValueInt(file string, val *int) error {
	fileContents, err := ReadFile(file)
	if err != nil || fileContents == "" {
		return err
	}

	*val, err = strconv.Atoi(strings.TrimSpace(fileContents))
	return err
}

// ReadFileValueString reads the contents of file into a string value. An empty file name leaves val unchanged.
func ReadFileValueString(file string, val *string) error {
	fileContents, err := ReadFile(file)
	if err != nil || BuildFullFilePath(file) == "" {
		return err
	}

	*val = strings.TrimSuffix(fileContents, "\n")
	return nil
}

func ReadFile(file string) (string, error) {
	absFilePath := BuildFullFilePath(file)
	if absFilePath == "" {
		return "", nil
	}

	buf, err := os.ReadFile(absFilePath)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func BuildFullFilePath(filename string) string {
	// values without quotes fail to unquote, keep them as they are
	unquotedFile, err := strconv.Unquote(filename)
	if err != nil {
		unquotedFile = filename
	}

	if unquotedFile == "" {
		return ""
	}

	if filepath.IsAbs(unquotedFile) {
		return unquotedFile
	}
	return filepath.Join(projectRootDirectory, unquotedFile)
}

func CreateTempFileFromStringData(namePrefix string, contents string) (string, error) {
	configFile, err := os.CreateTemp("", namePrefix)
	if err != nil {
		return "", err
	}
	if _, err = configFile.WriteString(contents); err != nil {
		_ = configFile.Close()
		return configFile.Name(), err
	}
	err = configFile.Close()
	return configFile.Name(), err
}

// ReadYamlFile unmarshals filename into out. An empty or blank file leaves out untouched.
func ReadYamlFile(filename string, out interface{}) error {
	fileContents, err := ReadFile(filename)
	if err != nil {
		return err
	}
	if strings.TrimSpace(fileContents) == "" {
		return nil
	}
	return yaml.UnmarshalStrict([]byte(fileContents), out)
}
