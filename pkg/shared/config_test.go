package shared

import (
	"os"
	"testing"

	"github.com/onsi/gomega"
)

func Test_ReadFileValueString(t *testing.T) {
	g := gomega.NewWithT(t)

	stringFile, err := CreateTempFileFromStringData("string", "example\n")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	defer os.Remove(stringFile)

	var stringConfig string
	g.Expect(ReadFileValueString(stringFile, &stringConfig)).To(gomega.Succeed())
	g.Expect(stringConfig).To(gomega.Equal("example"))
}

func Test_ReadFileValueString_EmptyNameKeepsValue(t *testing.T) {
	g := gomega.NewWithT(t)

	value := "preset"
	g.Expect(ReadFileValueString("", &value)).To(gomega.Succeed())
	g.Expect(value).To(gomega.Equal("preset"))
}

func Test_ReadFileValueInt(t *testing.T) {
	g := gomega.NewWithT(t)

	intFile, err := CreateTempFileFromStringData("int", "5432\n")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	defer os.Remove(intFile)

	var intConfig int
	g.Expect(ReadFileValueInt(intFile, &intConfig)).To(gomega.Succeed())
	g.Expect(intConfig).To(gomega.Equal(5432))
}

func Test_ReadFile_Missing(t *testing.T) {
	g := gomega.NewWithT(t)
	_, err := ReadFile("/does/not/exist")
	g.Expect(err).To(gomega.HaveOccurred())
}

func Test_ReadYamlFile(t *testing.T) {
	g := gomega.NewWithT(t)

	yamlFile, err := CreateTempFileFromStringData("clusters.yaml", "---\n- name: cluster-a\n- name: cluster-b\n")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	defer os.Remove(yamlFile)

	type entry struct {
		Name string `yaml:"name"`
	}
	var entries []entry
	g.Expect(ReadYamlFile("\""+yamlFile+"\"", &entries)).To(gomega.Succeed())
	g.Expect(entries).To(gomega.Equal([]entry{{Name: "cluster-a"}, {Name: "cluster-b"}}))
}

func Test_ReadYamlFile_RejectsUnknownFields(t *testing.T) {
	g := gomega.NewWithT(t)

	yamlFile, err := CreateTempFileFromStringData("clusters.yaml", "- nmae: typo\n")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	defer os.Remove(yamlFile)

	type entry struct {
		Name string `yaml:"name"`
	}
	var entries []entry
	g.Expect(ReadYamlFile(yamlFile, &entries)).ToNot(gomega.Succeed())
}

func Test_ReadYamlFile_Blank(t *testing.T) {
	g := gomega.NewWithT(t)

	yamlFile, err := CreateTempFileFromStringData("blank.yaml", "  \n")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	defer os.Remove(yamlFile)

	entries := []string{"untouched"}
	g.Expect(ReadYamlFile(yamlFile, &entries)).To(gomega.Succeed())
	g.Expect(entries).To(gomega.Equal([]string{"untouched"}))
}
