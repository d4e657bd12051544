package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDiagram = `<mxfile>
  <diagram>
    <mxGraphModel page="0">
      <root>
        <mxCell id="0"/>
        <mxCell id="arrow1" style="edgeStyle=orthogonalEdgeStyle;" edge="1"/>
        <mxCell id="box1" value="Start" style="rounded=1;fontFamily=Helvetica;fontSize=18;" vertex="1">
          <mxGeometry x="50" y="150" width="120" height="60"/>
        </mxCell>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`

const invalidDiagram = `<mxfile>
  <diagram>
    <mxGraphModel>
      <root>
        <mxCell id="0"/>
        <mxCell id="box1" value="Start" style="rounded=1;fontSize=10;" vertex="1">
          <mxGeometry x="50" y="150" width="120" height="60"/>
        </mxCell>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
	return dir
}

func TestNewLintCommand(t *testing.T) {
	cmd := newLintCommand()
	assert.NotNil(t, cmd)
	assert.Equal(t, "lint", cmd.Name)
	assert.NotNil(t, cmd.Flags)
	assert.NotNil(t, cmd.Run)
}

func TestLintFindDiagramFiles(t *testing.T) {
	tests := []struct {
		name          string
		setupFiles    map[string]string
		expectedFiles []string
	}{
		{
			name: "single drawio file",
			setupFiles: map[string]string{
				"flow.drawio": validDiagram,
			},
			expectedFiles: []string{"flow.drawio"},
		},
		{
			name: "xml files count too",
			setupFiles: map[string]string{
				"flow.drawio": validDiagram,
				"arch.xml":    validDiagram,
			},
			expectedFiles: []string{"flow.drawio", "arch.xml"},
		},
		{
			name: "nested files",
			setupFiles: map[string]string{
				"flow.drawio":          validDiagram,
				"docs/detail.drawio":   validDiagram,
			},
			expectedFiles: []string{"flow.drawio", "docs/detail.drawio"},
		},
		{
			name: "skip hidden directories",
			setupFiles: map[string]string{
				"flow.drawio":         validDiagram,
				".git/config.drawio":  validDiagram,
			},
			expectedFiles: []string{"flow.drawio"},
		},
		{
			name: "skip vendor and node_modules",
			setupFiles: map[string]string{
				"flow.drawio":              validDiagram,
				"vendor/dep.drawio":        validDiagram,
				"node_modules/dep.drawio":  validDiagram,
			},
			expectedFiles: []string{"flow.drawio"},
		},
		{
			name: "ignore other extensions",
			setupFiles: map[string]string{
				"flow.drawio": validDiagram,
				"readme.md":   "# hi",
				"main.go":     "package main",
			},
			expectedFiles: []string{"flow.drawio"},
		},
		{
			name: "no diagram files",
			setupFiles: map[string]string{
				"main.go": "package main",
			},
			expectedFiles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.setupFiles)

			files, err := lintFindDiagramFiles(dir)
			require.NoError(t, err)
			assert.Len(t, files, len(tt.expectedFiles))

			found := make(map[string]bool)
			for _, f := range files {
				rel, _ := filepath.Rel(dir, f)
				found[rel] = true
			}
			for _, expected := range tt.expectedFiles {
				assert.True(t, found[expected], "expected file %s not found", expected)
			}
		})
	}
}

func TestRunLint(t *testing.T) {
	tests := []struct {
		name       string
		setupFiles map[string]string
		format     string
		rulesOnly  bool
		wantErr    bool
	}{
		{
			name:       "valid diagram",
			setupFiles: map[string]string{"flow.drawio": validDiagram},
			format:     "text",
			wantErr:    false,
		},
		{
			name:       "invalid diagram fails on error",
			setupFiles: map[string]string{"flow.drawio": invalidDiagram},
			format:     "text",
			wantErr:    true,
		},
		{
			name:       "json output",
			setupFiles: map[string]string{"flow.drawio": validDiagram},
			format:     "json",
			wantErr:    false,
		},
		{
			name:       "github output never fails",
			setupFiles: map[string]string{"flow.drawio": invalidDiagram},
			format:     "github",
			wantErr:    false,
		},
		{
			name:       "no diagram files",
			setupFiles: map[string]string{"main.go": "package main"},
			format:     "text",
			wantErr:    false,
		},
		{
			name:       "rules only",
			setupFiles: map[string]string{"flow.drawio": validDiagram},
			format:     "text",
			rulesOnly:  true,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.setupFiles)

			err := runLint(dir, "", tt.format, true, false, false, tt.rulesOnly)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunLintFailOnWarning(t *testing.T) {
	// fontSize=14 warns but does not error.
	warningDiagram := `<mxfile>
  <diagram>
    <mxGraphModel page="0">
      <root>
        <mxCell id="0"/>
        <mxCell id="box1" value="Start" style="rounded=1;fontFamily=Helvetica;fontSize=14;" vertex="1">
          <mxGeometry x="50" y="150" width="120" height="60"/>
        </mxCell>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`

	dir := writeFiles(t, map[string]string{"flow.drawio": warningDiagram})

	err := runLint(dir, "", "text", true, false, false, false)
	assert.NoError(t, err)

	err = runLint(dir, "", "text", true, true, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warnings")
}

func TestRunLintWithConfigFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flow.drawio": invalidDiagram})

	configPath := filepath.Join(dir, "mxlint.yaml")
	configContent := `version: v1
rules:
  font-size: false
  font-family: false
  page-setting: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	err := runLint(dir, configPath, "text", true, false, false, false)
	assert.NoError(t, err)
}

func TestRunLintConfigDiscoveredFromDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"flow.drawio": invalidDiagram,
		"mxlint.yaml": "version: v1\nrules:\n  font-size: false\n  font-family: false\n  page-setting: false\n",
	})

	err := runLint(dir, "", "text", true, false, false, false)
	assert.NoError(t, err)
}

func TestRunLintMissingConfigFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flow.drawio": validDiagram})

	err := runLint(dir, "/nonexistent/mxlint.yaml", "text", true, false, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRunLintMalformedDiagram(t *testing.T) {
	dir := writeFiles(t, map[string]string{"broken.drawio": "<mxfile><unclosed>"})

	err := runLint(dir, "", "text", true, false, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLintCommand_Run(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flow.drawio": validDiagram})

	cmd := newLintCommand()

	err := cmd.Run([]string{"-dir", dir, "-format", "json"})
	assert.NoError(t, err)
}
