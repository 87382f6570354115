package weather

import "math/rand"

// Cities are looked up when no city is given.
var Cities = []string{
	"Paryż",
	"Florencja",
	"Barcelona",
	"Praga",
	"Kioto",
	"Wenecja",
	"Rzym",
	"Santorini",
	"Sydney",
	"Cape Town",
	"Vancouver",
	"San Francisco",
	"Rio de Janeiro",
	"Amsterdam",
	"Istanbul",
	"Edynburg",
	"Dubrownik",
	"Petra",
	"Buenos Aires",
	"Reykjavik",
	"Dubaj",
	"Singapur",
	"Queenstown",
	"Florencja",
}

func RandomCity() string {
	return Cities[rand.Intn(len(Cities))]
}
