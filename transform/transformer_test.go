package transform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/ontology"
	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/wikipedia"
)

func newTestTransformer(t *testing.T) *Transformer {
	t.Helper()
	return New(ontology.Default(), config.DefaultConfig().Transform)
}

func TestTransformPersonArticle(t *testing.T) {
	tr := newTestTransformer(t)

	article := &wikipedia.Article{
		Title:    "Hồ Chí Minh",
		PageID:   12345,
		URL:      "https://vi.wikipedia.org/wiki/H%E1%BB%93_Ch%C3%AD_Minh",
		Abstract: "Hồ Chí Minh là một nhà cách mạng và chính khách người Việt Nam.",
		Infobox: map[string]string{
			"template_type": "nhân vật",
			"ngày sinh":     "19/05/1890",
			"nơi sinh":      "Nghệ An",
		},
		Categories: []string{"Thể loại:Chủ tịch nước Việt Nam"},
		Language:   "vi",
	}

	require.NoError(t, tr.TransformArticle(article))
	g := tr.Graph()

	entity := tr.EntityURI("Hồ Chí Minh")
	personClass, ok := ontology.Default().ClassURI("Person")
	require.True(t, ok)

	assert.True(t, g.HasType(entity, personClass))
	assert.True(t, g.Has(rdf.Triple{
		Subject:   entity,
		Predicate: rdf.RDFSLabel,
		Object:    rdf.LangLiteral("Hồ Chí Minh", "vi"),
	}))

	birthDate, ok := ontology.Default().PropertyURI("birthDate")
	require.True(t, ok)
	assert.True(t, g.Has(rdf.Triple{
		Subject:   entity,
		Predicate: birthDate,
		Object:    rdf.TypedLiteral("1890-05-19", rdf.XSDDate),
	}))

	// Birthplace is minted as a first-class Place node.
	birthPlace, ok := ontology.Default().PropertyURI("birthPlace")
	require.True(t, ok)
	placeURI := tr.EntityURI("Nghệ An")
	assert.True(t, g.Has(rdf.Triple{
		Subject:   entity,
		Predicate: birthPlace,
		Object:    rdf.IRI(placeURI),
	}))
	placeClass, _ := ontology.Default().ClassURI("Place")
	assert.True(t, g.HasType(placeURI, placeClass))

	// Categories become SKOS concepts linked via dct:subject.
	assert.True(t, g.HasPredicate(rdf.DCTSubject))
	assert.True(t, g.HasType(tr.EntityURI("Chủ tịch nước Việt Nam"), rdf.SKOSConcept))
}

func TestClassResolutionFallbacks(t *testing.T) {
	tr := newTestTransformer(t)
	model := ontology.Default()

	tests := []struct {
		name    string
		article *wikipedia.Article
		class   string
	}{
		{
			name: "infobox template wins",
			article: &wikipedia.Article{
				Title:      "Đà Lạt",
				Infobox:    map[string]string{"template_type": "thành phố"},
				Categories: []string{"Thể loại:Nhân vật lịch sử"},
			},
			class: "City",
		},
		{
			name: "category keyword fallback",
			article: &wikipedia.Article{
				Title:      "Sông Hương",
				Categories: []string{"Thể loại:Địa điểm du lịch Huế"},
			},
			class: "Place",
		},
		{
			name: "specific category keyword beats generic",
			article: &wikipedia.Article{
				Title:      "Phan Bội Châu",
				Categories: []string{"Thể loại:Chính trị gia Việt Nam"},
			},
			class: "PoliticalFigure",
		},
		{
			name:    "default class when nothing matches",
			article: &wikipedia.Article{Title: "Bánh mì"},
			class:   "Person",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tr.TransformArticle(tt.article))
			classURI, ok := model.ClassURI(tt.class)
			require.True(t, ok)
			assert.True(t, tr.Graph().HasType(tr.EntityURI(tt.article.Title), classURI))
		})
	}
}

func TestUnresolvableClassCountedAsFailure(t *testing.T) {
	cfg := config.DefaultConfig().Transform
	cfg.DefaultClass = "Unknown"
	tr := New(ontology.Default(), cfg)

	err := tr.TransformArticle(&wikipedia.Article{Title: "Bánh mì"})
	require.ErrorIs(t, err, ErrClassUnresolved)
	assert.Equal(t, 1, tr.Stats().Failures)
	assert.Equal(t, 0, tr.Stats().EntitiesCreated)
}

func TestUnmappedInfoboxFieldSynthesized(t *testing.T) {
	tr := newTestTransformer(t)

	article := &wikipedia.Article{
		Title: "Văn Miếu",
		Infobox: map[string]string{
			"template_type": "nhân vật",
			"kiến trúc sư":  "Không rõ",
		},
	}
	require.NoError(t, tr.TransformArticle(article))

	custom := mintURI(ontology.Default().PropertyNamespace(), "kiến trúc sư")
	assert.True(t, tr.Graph().Has(rdf.Triple{
		Subject:   tr.EntityURI("Văn Miếu"),
		Predicate: custom,
		Object:    rdf.LangLiteral("Không rõ", "vi"),
	}))
}

func TestParseVietnameseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15/03/1990", "1990-03-15"},
		{"15-03-1990", "1990-03-15"},
		{"ngày 19/05/1890", "1890-05-19"},
		{"19 tháng 5, 1890", "1890-05-19"},
		{"1945", "1945"},
		{"năm 1945", "1945"},
		{"không rõ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseVietnameseDate(tt.in), "input %q", tt.in)
	}
}

func TestExtractInteger(t *testing.T) {
	n, ok := extractInteger("8.246.600 người")
	require.True(t, ok)
	assert.Equal(t, int64(8246600), n)

	n, ok = extractInteger("3.358,9 km²")
	require.True(t, ok)
	assert.Equal(t, int64(33589), n)

	_, ok = extractInteger("chưa thống kê")
	assert.False(t, ok)
}

func TestParseCoordinates(t *testing.T) {
	assert.Equal(t, "21.0285,105.8542", parseCoordinates("21.0285, 105.8542"))
	assert.Equal(t, "", parseCoordinates("không có"))
}

func TestEntityURIMinting(t *testing.T) {
	tr := newTestTransformer(t)

	uri := tr.EntityURI("Hồ Chí Minh")
	assert.Equal(t, rdf.NSViResource+"H%E1%BB%93_Ch%C3%AD_Minh", uri)

	// Repeated separators collapse and edges are trimmed.
	assert.Equal(t, "Thanh_pho", cleanTitleForURI("  Thanh   pho!! "))
}

func TestHomepageBecomesIRI(t *testing.T) {
	tr := newTestTransformer(t)

	article := &wikipedia.Article{
		Title: "Đại học Quốc gia Hà Nội",
		Infobox: map[string]string{
			"template_type": "trường đại học",
			"website":       "https://vnu.edu.vn",
			"hiệu trưởng":   "Lê Quân",
		},
	}
	require.NoError(t, tr.TransformArticle(article))

	homepage, _ := ontology.Default().PropertyURI("homepage")
	assert.True(t, tr.Graph().Has(rdf.Triple{
		Subject:   tr.EntityURI("Đại học Quốc gia Hà Nội"),
		Predicate: homepage,
		Object:    rdf.IRI("https://vnu.edu.vn"),
	}))
}

func TestBatchStats(t *testing.T) {
	tr := newTestTransformer(t)

	articles := []*wikipedia.Article{
		{Title: "Nguyễn Du", Infobox: map[string]string{"template_type": "nhà văn"}},
		{Title: "Huế", Infobox: map[string]string{"template_type": "thành phố"}},
		{Title: "Xôi", Categories: []string{"Thể loại:Ẩm thực"}},
	}

	stats := tr.TransformBatch(articles)
	assert.Equal(t, 3, stats.ArticlesProcessed)
	assert.Equal(t, 3, stats.EntitiesCreated)
	assert.Equal(t, 2, stats.InfoboxesProcessed)
	assert.Equal(t, 1, stats.TemplateCounts["nhà văn"])
	assert.Equal(t, 1, stats.TemplateCounts["thành phố"])
	assert.Greater(t, stats.TriplesGenerated, 0)
}

func TestValidateReportsMissingLabels(t *testing.T) {
	tr := newTestTransformer(t)
	require.NoError(t, tr.TransformArticle(&wikipedia.Article{Title: "Nguyễn Trãi"}))

	// A typed subject with no label triple is flagged.
	tr.Graph().AddTriple(rdf.NSViResource+"Ghost", rdf.RDFType, rdf.IRI(rdf.SKOSConcept))

	report := tr.Validate()
	assert.Equal(t, tr.Graph().Len(), report.TotalTriples)
	assert.Greater(t, report.UniqueSubjects, 0)

	var flagged bool
	for _, w := range report.Warnings {
		if w.Subject == rdf.NSViResource+"Ghost" {
			flagged = true
		}
	}
	assert.True(t, flagged)
}

func TestExportAndMergeRoundTrip(t *testing.T) {
	tr := newTestTransformer(t)
	require.NoError(t, tr.TransformArticle(&wikipedia.Article{
		Title:   "Hội An",
		Infobox: map[string]string{"template_type": "thành phố"},
	}))

	path := filepath.Join(t.TempDir(), "out.ttl")
	require.NoError(t, tr.Export(path, rdf.FormatTurtle))

	fresh := newTestTransformer(t)
	require.NoError(t, fresh.MergeFile(path))
	assert.True(t, fresh.Graph().Equal(tr.Graph()))
}
