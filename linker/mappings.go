package linker

import (
	"strings"

	"github.com/samber/lo"

	"github.com/dbpedia-vi/vikb/similarity"
)

// nameMappings is the curated dictionary of well-known Vietnamese
// entities and their canonical English names.
var nameMappings = map[string]string{
	"Hồ Chí Minh":              "Ho Chi Minh",
	"Nguyễn Trãi":              "Nguyen Trai",
	"Võ Nguyên Giáp":           "Vo Nguyen Giap",
	"Lê Lợi":                   "Le Loi",
	"Trần Hưng Đạo":            "Tran Hung Dao",
	"Hà Nội":                   "Hanoi",
	"Thành phố Hồ Chí Minh":    "Ho Chi Minh City",
	"Sài Gòn":                  "Ho Chi Minh City",
	"Huế":                      "Hue",
	"Đà Nẵng":                  "Da Nang",
	"Cần Thơ":                  "Can Tho",
	"Hải Phòng":                "Haiphong",
	"Vịnh Hạ Long":             "Ha Long Bay",
	"Hội An":                   "Hoi An",
	"Đại học Quốc gia Hà Nội":  "Vietnam National University, Hanoi",
	"Đại học Bách khoa Hà Nội": "Hanoi University of Science and Technology",
	"Chiến thắng Điện Biên Phủ": "Battle of Dien Bien Phu",
	"Cách mạng tháng Tám":       "August Revolution",
	"Truyện Kiều":               "The Tale of Kieu",
	"Số đỏ":                     "Dumb Luck",
}

// surnameTransliterations maps common Vietnamese surnames to their
// diacritic-free English renderings, applied as substring replacements
// when generating search candidates.
var surnameTransliterations = [...][2]string{
	{"Nguyễn", "Nguyen"},
	{"Trần", "Tran"},
	{"Lê", "Le"},
	{"Phạm", "Pham"},
	{"Huỳnh", "Huynh"},
	{"Vũ", "Vu"},
	{"Võ", "Vo"},
	{"Đặng", "Dang"},
	{"Bùi", "Bui"},
	{"Đỗ", "Do"},
	{"Hồ", "Ho"},
	{"Ngô", "Ngo"},
	{"Dương", "Duong"},
	{"Lý", "Ly"},
}

// englishCandidates derives search terms from a Vietnamese name: the
// raw name, its romanization, and the surname-transliterated form.
// Order is preserved; duplicates are dropped.
func englishCandidates(name string) []string {
	candidates := []string{name}

	if romanized := similarity.StripDiacritics(name); romanized != name {
		candidates = append(candidates, romanized)
	}

	transformed := name
	for _, pair := range surnameTransliterations {
		transformed = strings.ReplaceAll(transformed, pair[0], pair[1])
	}
	if transformed != name {
		candidates = append(candidates, transformed)
	}

	return lo.Uniq(candidates)
}
