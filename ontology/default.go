package ontology

import "github.com/dbpedia-vi/vikb/rdf"

// DefaultSchema returns the built-in Vietnamese DBPedia schema. It is
// the schema used when no ontology file is configured; a YAML file with
// the same shape can extend or replace it.
func DefaultSchema() *Schema {
	return &Schema{
		Ontology: Metadata{
			BaseURI:     rdf.NSViOntology,
			ResourceURI: rdf.NSViResource,
			PropertyURI: rdf.NSViProperty,
			Version:     "1.0",
		},
		Namespaces: map[string]string{
			"vi":      rdf.NSViOntology,
			"vidbp":   rdf.NSViProperty,
			"vires":   rdf.NSViResource,
			"dbpedia": rdf.NSDBPOntology,
			"dbpprop": rdf.NSDBPProperty,
			"dbpres":  rdf.NSDBPResource,
		},
		Classes: map[string]ClassDef{
			"Person": {
				URI:             "Person",
				LabelVi:         "Người",
				LabelEn:         "Person",
				CommentVi:       "Một cá nhân con người",
				EquivalentClass: rdf.NSDBPOntology + "Person",
				SubClasses:      []string{"PoliticalFigure", "Artist", "Writer", "Scientist"},
			},
			"PoliticalFigure": {
				URI:             "PoliticalFigure",
				LabelVi:         "Chính trị gia",
				LabelEn:         "Political Figure",
				CommentVi:       "Nhân vật hoạt động chính trị",
				EquivalentClass: rdf.NSDBPOntology + "Politician",
			},
			"Artist": {
				URI:             "Artist",
				LabelVi:         "Nghệ sĩ",
				LabelEn:         "Artist",
				CommentVi:       "Người hoạt động nghệ thuật",
				EquivalentClass: rdf.NSDBPOntology + "Artist",
			},
			"Writer": {
				URI:             "Writer",
				LabelVi:         "Nhà văn",
				LabelEn:         "Writer",
				CommentVi:       "Người sáng tác văn học",
				EquivalentClass: rdf.NSDBPOntology + "Writer",
			},
			"Scientist": {
				URI:             "Scientist",
				LabelVi:         "Nhà khoa học",
				LabelEn:         "Scientist",
				CommentVi:       "Người nghiên cứu khoa học",
				EquivalentClass: rdf.NSDBPOntology + "Scientist",
			},
			"Place": {
				URI:             "Place",
				LabelVi:         "Địa điểm",
				LabelEn:         "Place",
				CommentVi:       "Một vị trí địa lý",
				EquivalentClass: rdf.NSDBPOntology + "Place",
				SubClasses:      []string{"Province", "City"},
			},
			"Province": {
				URI:             "Province",
				LabelVi:         "Tỉnh",
				LabelEn:         "Province",
				CommentVi:       "Đơn vị hành chính cấp tỉnh của Việt Nam",
				EquivalentClass: rdf.NSDBPOntology + "Province",
			},
			"City": {
				URI:             "City",
				LabelVi:         "Thành phố",
				LabelEn:         "City",
				CommentVi:       "Khu vực đô thị",
				EquivalentClass: rdf.NSDBPOntology + "City",
			},
			"Organization": {
				URI:             "Organization",
				LabelVi:         "Tổ chức",
				LabelEn:         "Organization",
				CommentVi:       "Một tổ chức hoặc cơ quan",
				EquivalentClass: rdf.NSDBPOntology + "Organisation",
				SubClasses:      []string{"University", "Company"},
			},
			"University": {
				URI:             "University",
				LabelVi:         "Trường đại học",
				LabelEn:         "University",
				CommentVi:       "Cơ sở giáo dục đại học",
				EquivalentClass: rdf.NSDBPOntology + "University",
			},
			"Company": {
				URI:             "Company",
				LabelVi:         "Công ty",
				LabelEn:         "Company",
				CommentVi:       "Doanh nghiệp hoặc công ty",
				EquivalentClass: rdf.NSDBPOntology + "Company",
			},
			"Event": {
				URI:             "Event",
				LabelVi:         "Sự kiện",
				LabelEn:         "Event",
				CommentVi:       "Một sự kiện xảy ra trong thời gian",
				EquivalentClass: rdf.NSDBPOntology + "Event",
				SubClasses:      []string{"HistoricalEvent"},
			},
			"HistoricalEvent": {
				URI:             "HistoricalEvent",
				LabelVi:         "Sự kiện lịch sử",
				LabelEn:         "Historical Event",
				CommentVi:       "Sự kiện có ý nghĩa lịch sử",
				EquivalentClass: rdf.NSDBPOntology + "HistoricalEvent",
			},
			"Work": {
				URI:             "Work",
				LabelVi:         "Tác phẩm",
				LabelEn:         "Work",
				CommentVi:       "Tác phẩm sáng tạo",
				EquivalentClass: rdf.NSDBPOntology + "Work",
				SubClasses:      []string{"LiteraryWork", "MusicalWork", "Film"},
			},
			"LiteraryWork": {
				URI:             "LiteraryWork",
				LabelVi:         "Tác phẩm văn học",
				LabelEn:         "Literary Work",
				CommentVi:       "Tác phẩm văn học viết",
				EquivalentClass: rdf.NSDBPOntology + "WrittenWork",
			},
			"MusicalWork": {
				URI:             "MusicalWork",
				LabelVi:         "Tác phẩm âm nhạc",
				LabelEn:         "Musical Work",
				CommentVi:       "Tác phẩm âm nhạc",
				EquivalentClass: rdf.NSDBPOntology + "MusicalWork",
			},
			"Film": {
				URI:             "Film",
				LabelVi:         "Phim",
				LabelEn:         "Film",
				CommentVi:       "Tác phẩm điện ảnh",
				EquivalentClass: rdf.NSDBPOntology + "Film",
			},
		},
		Properties: map[string]PropertyDef{
			"birthDate": {
				URI: "birthDate", LabelVi: "ngày sinh", LabelEn: "birth date",
				CommentVi: "Ngày sinh của một người",
				Domain:    "Person", Range: "xsd:date",
				EquivalentProperty: rdf.NSDBPOntology + "birthDate",
			},
			"birthPlace": {
				URI: "birthPlace", LabelVi: "nơi sinh", LabelEn: "birth place",
				CommentVi: "Nơi sinh của một người",
				Domain:    "Person", Range: "Place",
				EquivalentProperty: rdf.NSDBPOntology + "birthPlace",
			},
			"deathDate": {
				URI: "deathDate", LabelVi: "ngày mất", LabelEn: "death date",
				CommentVi: "Ngày mất của một người",
				Domain:    "Person", Range: "xsd:date",
				EquivalentProperty: rdf.NSDBPOntology + "deathDate",
			},
			"deathPlace": {
				URI: "deathPlace", LabelVi: "nơi mất", LabelEn: "death place",
				CommentVi: "Nơi mất của một người",
				Domain:    "Person", Range: "Place",
				EquivalentProperty: rdf.NSDBPOntology + "deathPlace",
			},
			"occupation": {
				URI: "occupation", LabelVi: "nghề nghiệp", LabelEn: "occupation",
				CommentVi: "Nghề nghiệp của một người",
				Domain:    "Person", Range: "xsd:string",
			},
			"nationality": {
				URI: "nationality", LabelVi: "quốc tịch", LabelEn: "nationality",
				CommentVi: "Quốc tịch của một người",
				Domain:    "Person", Range: "xsd:string",
			},
			"ethnicity": {
				URI: "ethnicity", LabelVi: "dân tộc", LabelEn: "ethnicity",
				CommentVi: "Dân tộc của một người",
				Domain:    "Person", Range: "xsd:string",
			},
			"coordinates": {
				URI: "coordinates", LabelVi: "tọa độ", LabelEn: "coordinates",
				CommentVi: "Tọa độ địa lý",
				Domain:    "Place", Range: "xsd:string",
			},
			"area": {
				URI: "area", LabelVi: "diện tích", LabelEn: "area",
				CommentVi: "Diện tích của một khu vực",
				Domain:    "Place", Range: "xsd:integer",
				EquivalentProperty: rdf.NSDBPOntology + "areaTotal",
			},
			"population": {
				URI: "population", LabelVi: "dân số", LabelEn: "population",
				CommentVi: "Dân số của một khu vực",
				Domain:    "Place", Range: "xsd:integer",
				EquivalentProperty: rdf.NSDBPOntology + "populationTotal",
			},
			"foundingDate": {
				URI: "foundingDate", LabelVi: "ngày thành lập", LabelEn: "founding date",
				CommentVi: "Ngày thành lập của một tổ chức",
				Domain:    "Organization", Range: "xsd:date",
				EquivalentProperty: rdf.NSDBPOntology + "foundingDate",
			},
			"timeZone": {
				URI: "timeZone", LabelVi: "múi giờ", LabelEn: "time zone",
				CommentVi: "Múi giờ của một địa điểm",
				Domain:    "Place", Range: "xsd:string",
			},
			"province": {
				URI: "province", LabelVi: "tỉnh", LabelEn: "province",
				CommentVi: "Tỉnh chứa địa điểm này",
				Domain:    "Place", Range: "Province",
			},
			"district": {
				URI: "district", LabelVi: "quận", LabelEn: "district",
				CommentVi: "Quận hoặc huyện",
				Domain:    "Place", Range: "xsd:string",
			},
			"ward": {
				URI: "ward", LabelVi: "phường", LabelEn: "ward",
				CommentVi: "Phường hoặc xã",
				Domain:    "Place", Range: "xsd:string",
			},
			"headquarters": {
				URI: "headquarters", LabelVi: "trụ sở", LabelEn: "headquarters",
				CommentVi: "Trụ sở chính của một tổ chức",
				Domain:    "Organization", Range: "Place",
			},
			"director": {
				URI: "director", LabelVi: "giám đốc", LabelEn: "director",
				CommentVi: "Giám đốc của một tổ chức",
				Domain:    "Organization", Range: "Person",
			},
			"rector": {
				URI: "rector", LabelVi: "hiệu trưởng", LabelEn: "rector",
				CommentVi: "Hiệu trưởng của một trường",
				Domain:    "University", Range: "Person",
			},
			"name": {
				URI: "name", LabelVi: "tên", LabelEn: "name",
				CommentVi: "Tên của thực thể",
				Range:     "xsd:string",
				EquivalentProperty: rdf.FOAFName,
			},
			"fullName": {
				URI: "fullName", LabelVi: "tên đầy đủ", LabelEn: "full name",
				CommentVi: "Tên đầy đủ của thực thể",
				Range:     "xsd:string",
			},
			"alternateName": {
				URI: "alternateName", LabelVi: "tên khác", LabelEn: "alternate name",
				CommentVi: "Tên gọi khác của thực thể",
				Range:     "xsd:string",
			},
			"description": {
				URI: "description", LabelVi: "mô tả", LabelEn: "description",
				CommentVi: "Mô tả ngắn về thực thể",
				Range:     "xsd:string",
			},
			"homepage": {
				URI: "homepage", LabelVi: "trang chủ", LabelEn: "homepage",
				CommentVi: "Trang web chính thức",
				Range:     "xsd:string",
				EquivalentProperty: rdf.NSFOAF + "homepage",
			},
			"image": {
				URI: "image", LabelVi: "hình ảnh", LabelEn: "image",
				CommentVi: "Hình ảnh đại diện",
				Range:     "xsd:string",
				EquivalentProperty: rdf.NSFOAF + "depiction",
			},
		},
		Mappings: Mappings{
			InfoboxTemplates: map[string]string{
				"nhân vật":           "Person",
				"viên chức":          "PoliticalFigure",
				"chính khách":        "PoliticalFigure",
				"nhà văn":            "Writer",
				"nghệ sĩ":            "Artist",
				"nhà khoa học":       "Scientist",
				"đơn vị hành chính":  "Province",
				"tỉnh":               "Province",
				"thành phố":          "City",
				"khu dân cư":         "Place",
				"trường đại học":     "University",
				"công ty":            "Company",
				"tổ chức":            "Organization",
				"sự kiện":            "Event",
				"chiến tranh":        "HistoricalEvent",
				"sách":               "LiteraryWork",
				"album":              "MusicalWork",
				"phim":               "Film",
			},
		},
	}
}
