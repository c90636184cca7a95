package entities

import "strings"

// Distrik codes. Every kebun belongs to exactly one.
const (
	DistrikDTM = "DTM" // Distrik Tanjung Medan
	DistrikDBR = "DBR" // Distrik Bukit Raya
)

// Kebun is one plantation unit from the master list.
type Kebun struct {
	Kode       string `json:"kode"`
	Nama       string `json:"nama"`
	KodeIntern string `json:"kode_intern"`
	Distrik    string `json:"distrik"`
}

// MasterKebun is fixed reference data, not runtime state. The slice order is
// the canonical report order: district first, then the in-district sequence.
var MasterKebun = []Kebun{
	{Kode: "TJM", Nama: "Kebun Tanjung Medan", KodeIntern: "101", Distrik: DistrikDTM},
	{Kode: "SRO", Nama: "Kebun Sei Rokan", KodeIntern: "102", Distrik: DistrikDTM},
	{Kode: "SIN", Nama: "Kebun Sei Intan", KodeIntern: "103", Distrik: DistrikDTM},
	{Kode: "SSI", Nama: "Kebun Sei Siasam", KodeIntern: "104", Distrik: DistrikDTM},
	{Kode: "STA", Nama: "Kebun Sei Tapung", KodeIntern: "105", Distrik: DistrikDTM},
	{Kode: "TDN", Nama: "Kebun Tandun", KodeIntern: "106", Distrik: DistrikDTM},
	{Kode: "TTM", Nama: "Kebun Terantam", KodeIntern: "107", Distrik: DistrikDTM},
	{Kode: "SLI", Nama: "Kebun Sei Lindai", KodeIntern: "108", Distrik: DistrikDTM},
	{Kode: "SKE", Nama: "Kebun Sei Kencana", KodeIntern: "109", Distrik: DistrikDTM},
	{Kode: "TPH", Nama: "Kebun Tanah Putih", KodeIntern: "110", Distrik: DistrikDTM},
	{Kode: "SPA", Nama: "Kebun Sei Pagar", KodeIntern: "201", Distrik: DistrikDBR},
	{Kode: "SGH", Nama: "Kebun Sei Galuh", KodeIntern: "202", Distrik: DistrikDBR},
	{Kode: "SGO", Nama: "Kebun Sei Garo", KodeIntern: "203", Distrik: DistrikDBR},
	{Kode: "SBT", Nama: "Kebun Sei Buatan", KodeIntern: "204", Distrik: DistrikDBR},
	{Kode: "LDA", Nama: "Kebun Lubuk Dalam", KodeIntern: "205", Distrik: DistrikDBR},
	{Kode: "AMO", Nama: "Kebun Air Molek", KodeIntern: "206", Distrik: DistrikDBR},
	{Kode: "SBE", Nama: "Kebun Sei Berlian", KodeIntern: "207", Distrik: DistrikDBR},
	{Kode: "BTG", Nama: "Kebun Bukit Tiga", KodeIntern: "208", Distrik: DistrikDBR},
	{Kode: "SRG", Nama: "Kebun Sei Rangau", KodeIntern: "209", Distrik: DistrikDBR},
}

var kebunByKode = func() map[string]Kebun {
	m := make(map[string]Kebun, len(MasterKebun))
	for _, k := range MasterKebun {
		m[k.Kode] = k
	}
	return m
}()

// KebunByKode resolves a kebun code against the master list.
func KebunByKode(kode string) (Kebun, bool) {
	k, ok := kebunByKode[strings.ToUpper(strings.TrimSpace(kode))]
	return k, ok
}

// UrutanKebun returns the canonical position of a kebun code, or -1 when the
// code is not in the master list.
func UrutanKebun(kode string) int {
	kode = strings.ToUpper(strings.TrimSpace(kode))
	for i, k := range MasterKebun {
		if k.Kode == kode {
			return i
		}
	}
	return -1
}
