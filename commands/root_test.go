package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbpedia-vi/vikb/rdf"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Root("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vikb version test")
}

func TestOntologyStats(t *testing.T) {
	out, err := execute(t, "ontology", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Classes:")
	assert.Contains(t, out, "Template mappings:")
}

func TestOntologyExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontology.ttl")
	out, err := execute(t, "ontology", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	g, err := rdf.DecodeFile(path)
	require.NoError(t, err)
	assert.Greater(t, g.Len(), 100)
}

func TestTransformCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	articlesPath := filepath.Join(dir, "articles.json")
	outputPath := filepath.Join(dir, "out.ttl")

	articles := `[{
		"title": "Hồ Chí Minh",
		"page_id": 1,
		"url": "https://vi.wikipedia.org/wiki/H%E1%BB%93_Ch%C3%AD_Minh",
		"abstract": "Nhà cách mạng Việt Nam.",
		"infobox": {"template_type": "nhân vật", "ngày sinh": "19/05/1890"},
		"categories": ["Thể loại:Chủ tịch nước Việt Nam"],
		"language": "vi"
	}]`
	require.NoError(t, os.WriteFile(articlesPath, []byte(articles), 0644))

	out, err := execute(t, "transform", "-i", articlesPath, "-o", outputPath, "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Transformed 1 articles")

	g, err := rdf.DecodeFile(outputPath)
	require.NoError(t, err)
	assert.True(t, g.Has(rdf.Triple{
		Subject:   rdf.NSViResource + "H%E1%BB%93_Ch%C3%AD_Minh",
		Predicate: rdf.RDFSLabel,
		Object:    rdf.LangLiteral("Hồ Chí Minh", "vi"),
	}))
}

func TestQueryRejectsUnknownKind(t *testing.T) {
	_, err := execute(t, "query", "-k", "drop", "SELECT * WHERE { ?s ?p ?o }")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown query kind"))
}
