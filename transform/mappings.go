package transform

// propertyMappings routes Vietnamese infobox field names to canonical
// ontology property names. Lookup is on the lowercased field name;
// unmapped fields get a synthesized property instead of being dropped.
var propertyMappings = map[string]string{
	// Person fields.
	"ngày sinh":   "birthDate",
	"sinh":        "birthDate",
	"nơi sinh":    "birthPlace",
	"quê quán":    "birthPlace",
	"ngày mất":    "deathDate",
	"mất":         "deathDate",
	"nơi mất":     "deathPlace",
	"nghề nghiệp": "occupation",
	"quốc tịch":   "nationality",
	"dân tộc":     "ethnicity",

	// Place fields.
	"tọa độ":    "coordinates",
	"diện tích": "area",
	"dân số":    "population",
	"múi giờ":   "timeZone",
	"tỉnh":      "province",
	"quận":      "district",
	"phường":    "ward",

	// Organization fields.
	"thành lập":   "foundingDate",
	"trụ sở":      "headquarters",
	"giám đốc":    "director",
	"hiệu trưởng": "rector",

	// General fields.
	"tên":        "name",
	"tên đầy đủ": "fullName",
	"tên khác":   "alternateName",
	"mô tả":      "description",
	"website":    "homepage",
	"hình ảnh":   "image",
}

// categoryRule maps a Vietnamese keyword, matched as a case-insensitive
// substring of a category name, to an ontology class.
type categoryRule struct {
	keyword string
	class   string
}

// categoryRules is scanned in order per category; the first keyword hit
// wins. More specific keywords come before their generic counterparts.
var categoryRules = []categoryRule{
	{"chính trị gia", "PoliticalFigure"},
	{"nghệ sĩ", "Artist"},
	{"nhà văn", "Writer"},
	{"nhà khoa học", "Scientist"},
	{"nhân vật", "Person"},
	{"người", "Person"},
	{"tỉnh", "Province"},
	{"thành phố", "City"},
	{"địa điểm", "Place"},
	{"đại học", "University"},
	{"trường", "University"},
	{"công ty", "Company"},
	{"tổ chức", "Organization"},
	{"lịch sử", "HistoricalEvent"},
	{"sự kiện", "Event"},
	{"văn học", "LiteraryWork"},
	{"âm nhạc", "MusicalWork"},
	{"phim", "Film"},
}

// dateProperties take ISO-formatted date literals when the raw value
// parses as a Vietnamese date string.
var dateProperties = map[string]bool{
	"birthDate":    true,
	"deathDate":    true,
	"foundingDate": true,
}

// integerProperties are coerced to xsd:integer after stripping unit
// words and separators.
var integerProperties = map[string]bool{
	"population": true,
	"area":       true,
}

// placeProperties mint a linked Place entity instead of a literal.
var placeProperties = map[string]bool{
	"birthPlace": true,
	"deathPlace": true,
	"province":   true,
	"district":   true,
	"ward":       true,
}
